//go:build unit || e2e

package builder

import (
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	reqdto "club-booking/internal/handler/dto/request"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultToday sits inside the pool season so pool builders are valid as is.
var DefaultToday = calendar.NewDate(2026, time.June, 1)

type FieldBookingBuilder struct {
	MemberID string
	Today    calendar.Date
	Date     calendar.Date
	Hour     int
	Category string
}

func NewFieldBookingBuilder() *FieldBookingBuilder {
	return &FieldBookingBuilder{
		MemberID: DefaultMemberCode,
		Today:    DefaultToday,
		Date:     DefaultToday.AddDays(1),
		Hour:     10,
		Category: string(booking.CategoryTennis),
	}
}

func (b *FieldBookingBuilder) With(mutate func(*FieldBookingBuilder)) *FieldBookingBuilder {
	mutate(b)
	return b
}

func (b *FieldBookingBuilder) WithDate(d calendar.Date) *FieldBookingBuilder {
	b.Date = d
	return b
}

func (b *FieldBookingBuilder) WithHour(h int) *FieldBookingBuilder {
	b.Hour = h
	return b
}

func (b *FieldBookingBuilder) WithCategory(c string) *FieldBookingBuilder {
	b.Category = c
	return b
}

// Build methods
func (b *FieldBookingBuilder) BuildSlot() booking.FieldSlot {
	return booking.FieldSlot{Date: b.Date, Hour: b.Hour, Category: booking.Category(b.Category)}
}

func (b *FieldBookingBuilder) BuildDomain() (*booking.FieldBooking, error) {
	code, err := member.NewCode(b.MemberID)
	if err != nil {
		return nil, err
	}
	return booking.NewFieldBooking(b.Today, code, b.BuildSlot())
}

func (b *FieldBookingBuilder) BuildInfra(id int64) sqlc.FieldBookings {
	return sqlc.FieldBookings{
		ID:          id,
		MemberID:    b.MemberID,
		BookingDate: pgconv.DateToPgtype(b.Date),
		Hour:        int32(b.Hour), // #nosec G115
		Category:    b.Category,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *FieldBookingBuilder) BuildCommand() commands.FieldBookingRequest {
	return commands.FieldBookingRequest{
		MemberID: b.MemberID,
		Date:     b.Date.String(),
		Hour:     b.Hour,
		Category: b.Category,
	}
}

func (b *FieldBookingBuilder) BuildRequestDTO() reqdto.FieldBookingRequest {
	return reqdto.FieldBookingRequest{
		ID:       b.MemberID,
		Date:     b.Date.String(),
		Hour:     b.Hour,
		Category: b.Category,
	}
}

type PoolBookingBuilder struct {
	MemberID  string
	Today     calendar.Date
	Date      calendar.Date
	Beds      int
	Umbrellas int
}

func NewPoolBookingBuilder() *PoolBookingBuilder {
	return &PoolBookingBuilder{
		MemberID:  DefaultMemberCode,
		Today:     DefaultToday,
		Date:      DefaultToday.AddDays(1),
		Beds:      2,
		Umbrellas: 1,
	}
}

func (b *PoolBookingBuilder) With(mutate func(*PoolBookingBuilder)) *PoolBookingBuilder {
	mutate(b)
	return b
}

func (b *PoolBookingBuilder) WithDate(d calendar.Date) *PoolBookingBuilder {
	b.Date = d
	return b
}

func (b *PoolBookingBuilder) WithUnits(beds, umbrellas int) *PoolBookingBuilder {
	b.Beds = beds
	b.Umbrellas = umbrellas
	return b
}

// Build methods
func (b *PoolBookingBuilder) BuildDomain() (*booking.PoolBooking, error) {
	code, err := member.NewCode(b.MemberID)
	if err != nil {
		return nil, err
	}
	return booking.NewPoolBooking(b.Today, code, b.Date, booking.Units{Beds: b.Beds, Umbrellas: b.Umbrellas})
}

func (b *PoolBookingBuilder) BuildInfra(id int64) sqlc.PoolBookings {
	return sqlc.PoolBookings{
		ID:          id,
		MemberID:    b.MemberID,
		BookingDate: pgconv.DateToPgtype(b.Date),
		Beds:        int32(b.Beds),      // #nosec G115
		Umbrellas:   int32(b.Umbrellas), // #nosec G115
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *PoolBookingBuilder) BuildCommand() commands.PoolBookingRequest {
	return commands.PoolBookingRequest{
		MemberID:  b.MemberID,
		Date:      b.Date.String(),
		Beds:      b.Beds,
		Umbrellas: b.Umbrellas,
	}
}

func (b *PoolBookingBuilder) BuildRequestDTO() reqdto.PoolBookingRequest {
	return reqdto.PoolBookingRequest{
		ID:        b.MemberID,
		Date:      b.Date.String(),
		Beds:      b.Beds,
		Umbrellas: b.Umbrellas,
	}
}
