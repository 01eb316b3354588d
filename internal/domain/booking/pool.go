package booking

import (
	"fmt"

	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/calendar"
)

const (
	BedCapacity      = 80
	UmbrellaCapacity = 20
)

const (
	ResourceBeds      = "beds"
	ResourceUmbrellas = "umbrellas"
)

type Units struct {
	Beds      int
	Umbrellas int
}

func (u Units) validate() error {
	if u.Beds < 0 || u.Umbrellas < 0 {
		return ErrNegativeUnits
	}
	return nil
}

// ValidateUnitBounds rejects counts that no stored booking can hold. Optional
// counts that are nil are not checked.
func ValidateUnitBounds(beds, umbrellas *int) error {
	for _, v := range []struct {
		n     *int
		limit int
	}{{beds, BedCapacity}, {umbrellas, UmbrellaCapacity}} {
		if v.n == nil {
			continue
		}
		if *v.n < 0 {
			return ErrNegativeUnits
		}
		if *v.n > v.limit {
			return ErrUnitsOutOfRange
		}
	}
	return nil
}

// PoolUsage is the sum of units already reserved on one date.
type PoolUsage struct {
	Beds      int
	Umbrellas int
}

func (u PoolUsage) Free() Units {
	return Units{
		Beds:      max(0, BedCapacity-u.Beds),
		Umbrellas: max(0, UmbrellaCapacity-u.Umbrellas),
	}
}

// Admit checks beds before umbrellas and reports the first resource that overflows.
func (u PoolUsage) Admit(date calendar.Date, req Units) error {
	free := u.Free()
	if req.Beds > free.Beds {
		return &CapacityError{Resource: ResourceBeds, Available: free.Beds, Date: date}
	}
	if req.Umbrellas > free.Umbrellas {
		return &CapacityError{Resource: ResourceUmbrellas, Available: free.Umbrellas, Date: date}
	}
	return nil
}

// CapacityError carries the headroom left for the resource that overflowed.
type CapacityError struct {
	Resource  string
	Available int
	Date      calendar.Date
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d %s available on %s", e.Available, e.Resource, e.Date)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrPoolFull
}

type PoolBooking struct {
	id       int64
	memberID member.Code
	date     calendar.Date
	units    Units
}

// NewPoolBooking validates the date window and unit counts. Capacity is checked
// separately against the live usage of the date.
func NewPoolBooking(today calendar.Date, memberID member.Code, date calendar.Date, units Units) (*PoolBooking, error) {
	if err := RequireFutureDate(date, today); err != nil {
		return nil, err
	}
	if !PoolSeason.Contains(date) {
		return nil, ErrNotInSeason
	}
	if err := units.validate(); err != nil {
		return nil, err
	}
	return &PoolBooking{memberID: memberID, date: date, units: units}, nil
}

func ReconstructPoolBooking(id int64, memberID member.Code, date calendar.Date, units Units) *PoolBooking {
	return &PoolBooking{id: id, memberID: memberID, date: date, units: units}
}

func (b *PoolBooking) ID() int64             { return b.id }
func (b *PoolBooking) MemberID() member.Code { return b.memberID }
func (b *PoolBooking) Date() calendar.Date   { return b.date }
func (b *PoolBooking) Units() Units          { return b.units }
