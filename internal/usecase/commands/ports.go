package commands

import (
	"context"
	"time"

	"club-booking/internal/domain/member"
)

// MembershipChecker answers whether a member is registered. Failures to reach
// the registry are marked errs.ErrDependencyUnreachable.
type MembershipChecker interface {
	Exists(ctx context.Context, code member.Code) (bool, error)
}

// BookingPurger removes a member's future bookings from the ledger.
type BookingPurger interface {
	PurgeFutureBookings(ctx context.Context, code member.Code) error
}

type CascadePolicy struct {
	MaxRetries     uint64
	InitialBackoff time.Duration
	// Budget bounds the whole cascade, retries included.
	Budget time.Duration
}

type BookingResult struct {
	ID int64
}
