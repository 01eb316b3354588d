package booking

import (
	"errors"
	"fmt"
)

var (
	ErrDateNotAfterToday = errors.New("date is not after today")
	ErrHourOutOfRange    = fmt.Errorf("fields can be booked from %d to %d", FirstHour, LastHour)
	ErrInvalidCategory   = errors.New("category must be one of tennis, beach, soccer")
	ErrNotInSeason       = errors.New("pool can be booked from May 20 to September 15")
	ErrNegativeUnits     = errors.New("bed and umbrella units must not be negative")
	ErrUnitsOutOfRange   = fmt.Errorf("at most %d beds and %d umbrellas per date", BedCapacity, UmbrellaCapacity)
	ErrPoolFull          = errors.New("pool capacity exceeded")
)

type Category string

const (
	CategoryTennis Category = "tennis"
	CategoryBeach  Category = "beach"
	CategorySoccer Category = "soccer"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTennis, CategoryBeach, CategorySoccer:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func Categories() []Category {
	return []Category{CategoryTennis, CategoryBeach, CategorySoccer}
}
