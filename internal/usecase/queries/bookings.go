package queries

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"
)

type FieldBookingView struct {
	ID       int64            `json:"id"`
	Date     calendar.Date    `json:"date"`
	Hour     int              `json:"hour"`
	Category booking.Category `json:"category"`
}

type PoolBookingView struct {
	ID        int64         `json:"id"`
	Date      calendar.Date `json:"date"`
	Beds      int           `json:"beds"`
	Umbrellas int           `json:"umbrellas"`
}

type MemberBookingsView struct {
	MemberID string              `json:"member_id"`
	Fields   []*FieldBookingView `json:"fields"`
	Pool     []*PoolBookingView  `json:"pool"`
}

type MemberBookingReadStore interface {
	FieldBookingsFrom(ctx context.Context, code member.Code, from calendar.Date) ([]*FieldBookingView, error)
	PoolBookingsFrom(ctx context.Context, code member.Code, from calendar.Date) ([]*PoolBookingView, error)
}

type BookingQueries interface {
	UpcomingBookings(ctx context.Context, memberID string) (*MemberBookingsView, error)
}

type bookingQueriesImpl struct {
	readStore MemberBookingReadStore
	calendar  *calendar.Calendar
}

func NewBookingQueries(readStore MemberBookingReadStore, cal *calendar.Calendar) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, calendar: cal}
}

// UpcomingBookings lists the member's bookings dated today or later, the same
// set a purge would remove.
func (q *bookingQueriesImpl) UpcomingBookings(ctx context.Context, memberID string) (*MemberBookingsView, error) {
	code, err := shared.ParseMemberCode(memberID)
	if err != nil {
		return nil, err
	}
	today := q.calendar.Today()

	fields, err := q.readStore.FieldBookingsFrom(ctx, code, today)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	pool, err := q.readStore.PoolBookingsFrom(ctx, code, today)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &MemberBookingsView{MemberID: code.String(), Fields: fields, Pool: pool}, nil
}
