//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := calendar.ParseDate("2026-05-20")
		require.NoError(t, err)
		assert.Equal(t, calendar.NewDate(2026, time.May, 20), d)
		assert.Equal(t, "2026-05-20", d.String())
	})

	for _, in := range []string{"", "2026-5-20", "20/05/2026", "2026-02-30", "tomorrow"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := calendar.ParseDate(in)
			require.ErrorIs(t, err, calendar.ErrInvalidDateFormat)
		})
	}
}

func TestDateOrdering(t *testing.T) {
	d := calendar.NewDate(2026, time.December, 31)
	next := d.AddDays(1)

	assert.Equal(t, calendar.NewDate(2027, time.January, 1), next)
	assert.True(t, next.After(d))
	assert.True(t, d.Before(next))
	assert.False(t, d.After(d))
	assert.True(t, calendar.Date{}.IsZero())
}

func TestCalendarToday(t *testing.T) {
	// 23:30 UTC is already the next day in Rome.
	now := time.Date(2026, time.June, 30, 23, 30, 0, 0, time.UTC)
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	assert.Equal(t, calendar.NewDate(2026, time.June, 30), calendar.New(clock.NewMockClock(now), time.UTC).Today())
	assert.Equal(t, calendar.NewDate(2026, time.July, 1), calendar.New(clock.NewMockClock(now), rome).Today())
}
