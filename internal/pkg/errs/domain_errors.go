package errs

import "errors"

// Error kinds shared by both services. Use errs.Is to match them, since most
// are attached to a cause with Mark rather than returned bare.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("booking date must be after today")
	ErrOutOfSeason  = errors.New("date outside the pool season")
	ErrInvalidSlot  = errors.New("invalid field slot")

	// Membership errors
	ErrAlreadyExists  = errors.New("member already exists")
	ErrMemberNotFound = errors.New("member does not exist")

	// Booking errors
	ErrNotFound         = errors.New("not found")
	ErrSlotTaken        = errors.New("slot already booked")
	ErrDuplicateBooking = errors.New("member already holds a booking for this date")
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// Dependency errors
	ErrDependencyUnreachable = errors.New("dependency unreachable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Kind returns the name of the first error kind err is marked with, or "" when
// err carries none of them.
func Kind(err error) string {
	for _, k := range kinds {
		if Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

var kinds = []struct {
	name string
	err  error
}{
	{"INVALID_INPUT", ErrInvalidInput},
	{"INVALID_DATE", ErrInvalidDate},
	{"OUT_OF_SEASON", ErrOutOfSeason},
	{"INVALID_SLOT", ErrInvalidSlot},
	{"ALREADY_EXISTS", ErrAlreadyExists},
	{"MEMBER_NOT_FOUND", ErrMemberNotFound},
	{"NOT_FOUND", ErrNotFound},
	{"SLOT_TAKEN", ErrSlotTaken},
	{"DUPLICATE_BOOKING", ErrDuplicateBooking},
	{"CAPACITY_EXCEEDED", ErrCapacityExceeded},
	{"DEPENDENCY_UNREACHABLE", ErrDependencyUnreachable},
}
