//go:build unit

package booking_test

import (
	"testing"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/pkg/calendar"
	"club-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldCase struct {
	name   string
	mutate func(*builder.FieldBookingBuilder)
	errIs  error
}

func TestFieldBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewFieldBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildSlot(), actual.Slot(), cmp.AllowUnexported(calendar.Date{})); diff != "" {
			t.Errorf("slot mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, builder.DefaultMemberCode, actual.MemberID().String())
		assert.Zero(t, actual.ID())
	})

	t.Run("日付検証", func(t *testing.T) {
		runFieldCases(t, []fieldCase{
			{
				name:   "明日OK",
				mutate: func(b *builder.FieldBookingBuilder) { b.WithDate(b.Today.AddDays(1)) },
			},
			{
				name:   "今日NG",
				mutate: func(b *builder.FieldBookingBuilder) { b.WithDate(b.Today) },
				errIs:  booking.ErrDateNotAfterToday,
			},
			{
				name:   "昨日NG",
				mutate: func(b *builder.FieldBookingBuilder) { b.WithDate(b.Today.AddDays(-1)) },
				errIs:  booking.ErrDateNotAfterToday,
			},
			{
				name: "過去日かつ範囲外の時刻は日付エラーを優先NG",
				mutate: func(b *builder.FieldBookingBuilder) {
					b.WithDate(b.Today.AddDays(-1)).WithHour(23)
				},
				errIs: booking.ErrDateNotAfterToday,
			},
		})
	})

	t.Run("時刻検証", func(t *testing.T) {
		runFieldCases(t, []fieldCase{
			{name: "10時OK", mutate: func(b *builder.FieldBookingBuilder) { b.WithHour(10) }},
			{name: "21時OK", mutate: func(b *builder.FieldBookingBuilder) { b.WithHour(21) }},
			{name: "9時NG", mutate: func(b *builder.FieldBookingBuilder) { b.WithHour(9) }, errIs: booking.ErrHourOutOfRange},
			{name: "22時NG", mutate: func(b *builder.FieldBookingBuilder) { b.WithHour(22) }, errIs: booking.ErrHourOutOfRange},
		})
	})

	t.Run("種別検証", func(t *testing.T) {
		runFieldCases(t, []fieldCase{
			{name: "tennis OK", mutate: func(b *builder.FieldBookingBuilder) { b.WithCategory("tennis") }},
			{name: "beach OK", mutate: func(b *builder.FieldBookingBuilder) { b.WithCategory("beach") }},
			{name: "soccer OK", mutate: func(b *builder.FieldBookingBuilder) { b.WithCategory("soccer") }},
			{name: "golf NG", mutate: func(b *builder.FieldBookingBuilder) { b.WithCategory("golf") }, errIs: booking.ErrInvalidCategory},
			{name: "大文字NG", mutate: func(b *builder.FieldBookingBuilder) { b.WithCategory("Tennis") }, errIs: booking.ErrInvalidCategory},
		})
	})
}

func TestFreeHours(t *testing.T) {
	cases := []struct {
		name   string
		booked []int
		want   []int
	}{
		{name: "予約なし", booked: nil, want: []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}},
		{name: "一部予約", booked: []int{12, 10, 21}, want: []int{11, 13, 14, 15, 16, 17, 18, 19, 20}},
		{name: "重複した予約時刻", booked: []int{15, 15}, want: []int{10, 11, 12, 13, 14, 16, 17, 18, 19, 20, 21}},
		{name: "全て予約済み", booked: booking.DailyHours(), want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.FreeHours(tc.booked)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FreeHours mismatch (-want +got):\n%s", diff)
			}
			// free and booked hours always partition the day
			assert.Len(t, got, len(booking.DailyHours())-distinct(tc.booked))
		})
	}
}

func TestNewCategory(t *testing.T) {
	for _, c := range booking.Categories() {
		got, err := booking.NewCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := booking.NewCategory("")
	assert.ErrorIs(t, err, booking.ErrInvalidCategory)
}

func TestRequireFutureDate(t *testing.T) {
	today := calendar.NewDate(2026, time.December, 31)
	assert.NoError(t, booking.RequireFutureDate(calendar.NewDate(2027, time.January, 1), today))
	assert.ErrorIs(t, booking.RequireFutureDate(today, today), booking.ErrDateNotAfterToday)
}

func distinct(hs []int) int {
	seen := map[int]struct{}{}
	for _, h := range hs {
		seen[h] = struct{}{}
	}
	return len(seen)
}

func runFieldCases(t *testing.T, cases []fieldCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewFieldBookingBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, actual)
		})
	}
}
