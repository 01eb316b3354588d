package readstore

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	ListBookedHours(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedHoursParams) ([]int32, error)
	GetPoolUsage(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) (sqlc.GetPoolUsageRow, error)
	ListFieldBookingsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFieldBookingsByMemberParams) ([]sqlc.FieldBookings, error)
	ListPoolBookingsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPoolBookingsByMemberParams) ([]sqlc.PoolBookings, error)
}

// BookingReadStore serves the ledger's read side: free slots, pool headroom
// and a member's upcoming bookings.
type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) BookedHours(ctx context.Context, date calendar.Date, category booking.Category) ([]int, error) {
	rows, err := r.queries.ListBookedHours(ctx, r.db, sqlc.ListBookedHoursParams{
		BookingDate: pgconv.DateToPgtype(date),
		Category:    category.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked hours", err)
	}
	hours := make([]int, 0, len(rows))
	for _, h := range rows {
		hours = append(hours, int(h))
	}
	return hours, nil
}

func (r *BookingReadStore) Usage(ctx context.Context, date calendar.Date) (booking.PoolUsage, error) {
	row, err := r.queries.GetPoolUsage(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return booking.PoolUsage{}, infra.WrapRepoErr("failed to sum pool usage", err)
	}
	return booking.PoolUsage{Beds: int(row.Beds), Umbrellas: int(row.Umbrellas)}, nil
}

func (r *BookingReadStore) FieldBookingsFrom(ctx context.Context, code member.Code, from calendar.Date) ([]*queries.FieldBookingView, error) {
	rows, err := r.queries.ListFieldBookingsByMember(ctx, r.db, sqlc.ListFieldBookingsByMemberParams{
		MemberID: code.String(),
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field bookings", err)
	}
	views := make([]*queries.FieldBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.FieldBookingView{
			ID:       row.ID,
			Date:     pgconv.DateFromPgtype(row.BookingDate),
			Hour:     int(row.Hour),
			Category: booking.Category(row.Category),
		})
	}
	return views, nil
}

func (r *BookingReadStore) PoolBookingsFrom(ctx context.Context, code member.Code, from calendar.Date) ([]*queries.PoolBookingView, error) {
	rows, err := r.queries.ListPoolBookingsByMember(ctx, r.db, sqlc.ListPoolBookingsByMemberParams{
		MemberID: code.String(),
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pool bookings", err)
	}
	views := make([]*queries.PoolBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PoolBookingView{
			ID:        row.ID,
			Date:      pgconv.DateFromPgtype(row.BookingDate),
			Beds:      int(row.Beds),
			Umbrellas: int(row.Umbrellas),
		})
	}
	return views, nil
}
