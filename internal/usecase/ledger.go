package usecase

import (
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
)

// BookingLedger is the ledger capability both transports are built on.
type BookingLedger interface {
	commands.FieldCommands
	commands.PoolCommands
	commands.PurgeCommands
	queries.FieldQueries
	queries.PoolQueries
	queries.BookingQueries
}

type bookingLedger struct {
	commands.FieldCommands
	commands.PoolCommands
	commands.PurgeCommands
	queries.FieldQueries
	queries.PoolQueries
	queries.BookingQueries
}

func NewBookingLedger(
	field commands.FieldCommands,
	pool commands.PoolCommands,
	purge commands.PurgeCommands,
	fieldQ queries.FieldQueries,
	poolQ queries.PoolQueries,
	bookingQ queries.BookingQueries,
) BookingLedger {
	return &bookingLedger{
		FieldCommands:  field,
		PoolCommands:   pool,
		PurgeCommands:  purge,
		FieldQueries:   fieldQ,
		PoolQueries:    poolQ,
		BookingQueries: bookingQ,
	}
}
