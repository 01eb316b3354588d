package commands

import (
	"context"
	"log/slog"

	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
	"club-booking/internal/usecase/shared"
)

type PurgeResult struct {
	FieldBookings int64
	PoolBookings  int64
}

type PurgeCommands interface {
	PurgeFutureBookings(ctx context.Context, memberID string) (*PurgeResult, error)
}

type purgeCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *calendar.Calendar
	logger   *slog.Logger
}

func NewPurgeCommands(uow shared.UnitOfWork, cal *calendar.Calendar, logger *slog.Logger) PurgeCommands {
	return &purgeCommandsImpl{uow: uow, calendar: cal, logger: logger}
}

// PurgeFutureBookings deletes every field and pool booking of the member dated
// today or later. Running it again deletes nothing and still succeeds.
func (uc *purgeCommandsImpl) PurgeFutureBookings(ctx context.Context, memberID string) (*PurgeResult, error) {
	code, err := shared.ParseMemberCode(memberID)
	if err != nil {
		return nil, err
	}
	today := uc.calendar.Today()

	var res PurgeResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.FieldBookings().DeleteFrom(ctx, tx.DB(), code, today)
		if derr != nil {
			return derr
		}
		res.FieldBookings = n

		n, derr = tx.PoolBookings().DeleteFrom(ctx, tx.DB(), code, today)
		if derr != nil {
			return derr
		}
		res.PoolBookings = n
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.RecordPurge(metrics.ResourceField, res.FieldBookings)
	metrics.RecordPurge(metrics.ResourcePool, res.PoolBookings)
	uc.logger.Info("purged member bookings",
		"member_id", code.String(),
		"from", today.String(),
		"field_bookings", res.FieldBookings,
		"pool_bookings", res.PoolBookings)
	return &res, nil
}
