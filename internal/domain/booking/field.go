package booking

import (
	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/calendar"
)

// Fields open at FirstHour and the last bookable slot starts at LastHour.
const (
	FirstHour = 10
	LastHour  = 21
)

func DailyHours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// FreeHours returns the daily hours not present in booked, in ascending order.
func FreeHours(booked []int) []int {
	taken := make(map[int]struct{}, len(booked))
	for _, h := range booked {
		taken[h] = struct{}{}
	}
	free := make([]int, 0, LastHour-FirstHour+1)
	for _, h := range DailyHours() {
		if _, ok := taken[h]; !ok {
			free = append(free, h)
		}
	}
	return free
}

func ValidateHour(hour int) error {
	if hour < FirstHour || hour > LastHour {
		return ErrHourOutOfRange
	}
	return nil
}

// FieldSlot identifies one bookable hour of one field on one day.
type FieldSlot struct {
	Date     calendar.Date
	Hour     int
	Category Category
}

type FieldBooking struct {
	id       int64
	memberID member.Code
	slot     FieldSlot
}

// NewFieldBooking checks the date first and then the hour, so a past date is
// reported even when the hour is also wrong.
func NewFieldBooking(today calendar.Date, memberID member.Code, slot FieldSlot) (*FieldBooking, error) {
	if err := RequireFutureDate(slot.Date, today); err != nil {
		return nil, err
	}
	if err := ValidateHour(slot.Hour); err != nil {
		return nil, err
	}
	if !slot.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &FieldBooking{memberID: memberID, slot: slot}, nil
}

func ReconstructFieldBooking(id int64, memberID member.Code, slot FieldSlot) *FieldBooking {
	return &FieldBooking{id: id, memberID: memberID, slot: slot}
}

func (b *FieldBooking) ID() int64             { return b.id }
func (b *FieldBooking) MemberID() member.Code { return b.memberID }
func (b *FieldBooking) Slot() FieldSlot       { return b.slot }
func (b *FieldBooking) Date() calendar.Date   { return b.slot.Date }
func (b *FieldBooking) Hour() int             { return b.slot.Hour }
func (b *FieldBooking) Category() Category    { return b.slot.Category }
