package queries

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"
)

type FreeSlotsView struct {
	Date     calendar.Date    `json:"date"`
	Category booking.Category `json:"category"`
	Hours    []int            `json:"hours"`
}

type FieldReadStore interface {
	BookedHours(ctx context.Context, date calendar.Date, category booking.Category) ([]int, error)
}

type FieldQueries interface {
	FreeFieldSlots(ctx context.Context, date, category string) (*FreeSlotsView, error)
}

type fieldQueriesImpl struct {
	readStore FieldReadStore
}

func NewFieldQueries(readStore FieldReadStore) FieldQueries {
	return &fieldQueriesImpl{readStore: readStore}
}

// FreeFieldSlots lists the unbooked hours of one field. Past dates are
// answered too; the date window only applies to new bookings.
func (q *fieldQueriesImpl) FreeFieldSlots(ctx context.Context, date, category string) (*FreeSlotsView, error) {
	d, err := shared.ParseDate(date)
	if err != nil {
		return nil, err
	}
	c, err := shared.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	booked, err := q.readStore.BookedHours(ctx, d, c)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &FreeSlotsView{
		Date:     d,
		Category: c,
		Hours:    booking.FreeHours(booked),
	}, nil
}
