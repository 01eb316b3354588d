package repository

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type PoolBookingWriteQueries interface {
	LockPoolDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) error
	PoolBookingExists(ctx context.Context, db sqlc.DBTX, arg sqlc.PoolBookingExistsParams) (bool, error)
	GetPoolUsage(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) (sqlc.GetPoolUsageRow, error)
	CreatePoolBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePoolBookingParams) (int64, error)
	DeletePoolBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePoolBookingParams) (int64, error)
	DeletePoolBookingsFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePoolBookingsFromParams) (int64, error)
}

type PoolBookingRepository struct {
	queries PoolBookingWriteQueries
}

func NewPoolBookingRepository(queries PoolBookingWriteQueries) *PoolBookingRepository {
	return &PoolBookingRepository{queries: queries}
}

func (r *PoolBookingRepository) LockDate(ctx context.Context, tx sqlc.DBTX, date calendar.Date) error {
	if err := r.queries.LockPoolDate(ctx, tx, pgconv.DateToPgtype(date)); err != nil {
		return infra.WrapRepoErr("failed to lock pool date", err)
	}
	return nil
}

func (r *PoolBookingRepository) ExistsForMember(ctx context.Context, tx sqlc.DBTX, memberID member.Code, date calendar.Date) (bool, error) {
	ok, err := r.queries.PoolBookingExists(ctx, tx, sqlc.PoolBookingExistsParams{
		BookingDate: pgconv.DateToPgtype(date),
		MemberID:    memberID.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pool booking", err)
	}
	return ok, nil
}

func (r *PoolBookingRepository) Usage(ctx context.Context, tx sqlc.DBTX, date calendar.Date) (booking.PoolUsage, error) {
	row, err := r.queries.GetPoolUsage(ctx, tx, pgconv.DateToPgtype(date))
	if err != nil {
		return booking.PoolUsage{}, infra.WrapRepoErr("failed to sum pool usage", err)
	}
	return booking.PoolUsage{Beds: int(row.Beds), Umbrellas: int(row.Umbrellas)}, nil
}

func (r *PoolBookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.PoolBooking) (int64, error) {
	units := b.Units()
	id, err := r.queries.CreatePoolBooking(ctx, tx, sqlc.CreatePoolBookingParams{
		MemberID:    b.MemberID().String(),
		BookingDate: pgconv.DateToPgtype(b.Date()),
		Beds:        int32(units.Beds),      // #nosec G115 -- bounded by capacity
		Umbrellas:   int32(units.Umbrellas), // #nosec G115 -- bounded by capacity
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create pool booking", err)
	}
	return id, nil
}

func (r *PoolBookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, memberID member.Code, date calendar.Date, match shared.PoolMatch) error {
	n, err := r.queries.DeletePoolBooking(ctx, tx, sqlc.DeletePoolBookingParams{
		MemberID:    memberID.String(),
		BookingDate: pgconv.DateToPgtype(date),
		Beds:        pgconv.IntPtrToPgtype(match.Beds),
		Umbrellas:   pgconv.IntPtrToPgtype(match.Umbrellas),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete pool booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pool booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PoolBookingRepository) DeleteFrom(ctx context.Context, tx sqlc.DBTX, memberID member.Code, from calendar.Date) (int64, error) {
	n, err := r.queries.DeletePoolBookingsFrom(ctx, tx, sqlc.DeletePoolBookingsFromParams{
		MemberID: memberID.String(),
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge pool bookings", err)
	}
	return n, nil
}
