package repository

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/pgconv"
)

type FieldBookingWriteQueries interface {
	CreateFieldBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFieldBookingParams) (int64, error)
	DeleteFieldBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFieldBookingParams) (int64, error)
	DeleteFieldBookingsFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFieldBookingsFromParams) (int64, error)
}

type FieldBookingRepository struct {
	queries FieldBookingWriteQueries
}

func NewFieldBookingRepository(queries FieldBookingWriteQueries) *FieldBookingRepository {
	return &FieldBookingRepository{queries: queries}
}

// Create relies on ON CONFLICT DO NOTHING: a taken slot returns no id rather
// than aborting the surrounding transaction.
func (r *FieldBookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.FieldBooking) (int64, error) {
	id, err := r.queries.CreateFieldBooking(ctx, tx, sqlc.CreateFieldBookingParams{
		MemberID:    b.MemberID().String(),
		BookingDate: pgconv.DateToPgtype(b.Date()),
		Hour:        int32(b.Hour()), // #nosec G115 -- hour is validated to 10..21
		Category:    b.Category().String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("field slot already booked", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create field booking", err)
	}
	return id, nil
}

func (r *FieldBookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, memberID member.Code, slot booking.FieldSlot) error {
	n, err := r.queries.DeleteFieldBooking(ctx, tx, sqlc.DeleteFieldBookingParams{
		MemberID:    memberID.String(),
		BookingDate: pgconv.DateToPgtype(slot.Date),
		Hour:        int32(slot.Hour), // #nosec G115 -- bounded by the handler
		Category:    slot.Category.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete field booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("field booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FieldBookingRepository) DeleteFrom(ctx context.Context, tx sqlc.DBTX, memberID member.Code, from calendar.Date) (int64, error) {
	n, err := r.queries.DeleteFieldBookingsFrom(ctx, tx, sqlc.DeleteFieldBookingsFromParams{
		MemberID: memberID.String(),
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge field bookings", err)
	}
	return n, nil
}
