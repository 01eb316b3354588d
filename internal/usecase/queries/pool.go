package queries

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"
)

type PoolAvailabilityView struct {
	Date              calendar.Date `json:"date"`
	BedUnitsFree      int           `json:"bed_units_free"`
	UmbrellaUnitsFree int           `json:"umbrella_units_free"`
	InSeason          bool          `json:"in_season"`
}

type PoolReadStore interface {
	Usage(ctx context.Context, date calendar.Date) (booking.PoolUsage, error)
}

type PoolQueries interface {
	FreePoolCapacity(ctx context.Context, date string) (*PoolAvailabilityView, error)
}

type poolQueriesImpl struct {
	readStore PoolReadStore
}

func NewPoolQueries(readStore PoolReadStore) PoolQueries {
	return &poolQueriesImpl{readStore: readStore}
}

// FreePoolCapacity reports zero free units on dates outside the season.
func (q *poolQueriesImpl) FreePoolCapacity(ctx context.Context, date string) (*PoolAvailabilityView, error) {
	d, err := shared.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !booking.PoolSeason.Contains(d) {
		return &PoolAvailabilityView{Date: d}, nil
	}

	usage, err := q.readStore.Usage(ctx, d)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	free := usage.Free()
	return &PoolAvailabilityView{
		Date:              d,
		BedUnitsFree:      free.Beds,
		UmbrellaUnitsFree: free.Umbrellas,
		InSeason:          true,
	}, nil
}
