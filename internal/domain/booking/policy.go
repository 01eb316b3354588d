package booking

import (
	"time"

	"club-booking/internal/pkg/calendar"
)

// RequireFutureDate rejects today and any earlier day.
func RequireFutureDate(date, today calendar.Date) error {
	if !date.After(today) {
		return ErrDateNotAfterToday
	}
	return nil
}

type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

// Season is an inclusive month/day window that repeats every year.
type Season struct {
	Start MonthDay
	End   MonthDay
}

var PoolSeason = Season{
	Start: MonthDay{Month: time.May, Day: 20},
	End:   MonthDay{Month: time.September, Day: 15},
}

func (s Season) Contains(d calendar.Date) bool {
	md := MonthDay{Month: d.Month(), Day: d.Day()}
	return !md.before(s.Start) && !s.End.before(md)
}
