package calendar

import (
	"time"

	"club-booking/internal/pkg/clock"
)

// Calendar answers "what day is it" for the club's time zone.
type Calendar struct {
	clock    clock.Clock
	location *time.Location
}

func New(c clock.Clock, loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{clock: c, location: loc}
}

func (c *Calendar) Today() Date {
	return FromTime(c.clock.Now().In(c.location))
}

func (c *Calendar) Location() *time.Location {
	return c.location
}
