package commands

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
	"club-booking/internal/usecase/shared"
)

var errPoolBookingExists = errs.New("member already booked the pool on this date")

type PoolBookingRequest struct {
	MemberID  string
	Date      string
	Beds      int
	Umbrellas int
}

// PoolCancelRequest matches on member and date. Beds and Umbrellas, when set,
// must also equal the stored booking.
type PoolCancelRequest struct {
	MemberID  string
	Date      string
	Beds      *int
	Umbrellas *int
}

type PoolCommands interface {
	BookPool(ctx context.Context, req PoolBookingRequest) (*BookingResult, error)
	CancelPool(ctx context.Context, req PoolCancelRequest) error
}

type poolCommandsImpl struct {
	uow        shared.UnitOfWork
	calendar   *calendar.Calendar
	membership MembershipChecker
}

func NewPoolCommands(uow shared.UnitOfWork, cal *calendar.Calendar, membership MembershipChecker) PoolCommands {
	return &poolCommandsImpl{
		uow:        uow,
		calendar:   cal,
		membership: membership,
	}
}

func (uc *poolCommandsImpl) BookPool(ctx context.Context, req PoolBookingRequest) (*BookingResult, error) {
	res, err := uc.bookPool(ctx, req)
	metrics.RecordBooking(metrics.ResourcePool, shared.Outcome(err))
	return res, err
}

func (uc *poolCommandsImpl) bookPool(ctx context.Context, req PoolBookingRequest) (*BookingResult, error) {
	code, err := shared.ParseMemberCode(req.MemberID)
	if err != nil {
		return nil, err
	}
	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewPoolBooking(uc.calendar.Today(), code, date, booking.Units{Beds: req.Beds, Umbrellas: req.Umbrellas})
	if err != nil {
		return nil, shared.MarkDomainError(err)
	}

	if err := requireMember(ctx, uc.membership, code); err != nil {
		return nil, err
	}

	// The advisory lock serializes every pool writer of this date, so the
	// duplicate check and the capacity sums below see a stable view.
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.PoolBookings()
		if derr := repo.LockDate(ctx, tx.DB(), date); derr != nil {
			return derr
		}

		exists, derr := repo.ExistsForMember(ctx, tx.DB(), code, date)
		if derr != nil {
			return derr
		}
		if exists {
			return errs.Mark(errPoolBookingExists, errs.ErrDuplicateBooking)
		}

		usage, derr := repo.Usage(ctx, tx.DB(), date)
		if derr != nil {
			return derr
		}
		if derr := usage.Admit(date, b.Units()); derr != nil {
			return shared.MarkDomainError(derr)
		}

		id, derr = repo.Create(ctx, tx.DB(), b)
		return derr
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDuplicateBooking), errs.Is(err, errs.ErrCapacityExceeded):
			return nil, err
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrDuplicateBooking)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return &BookingResult{ID: id}, nil
}

func (uc *poolCommandsImpl) CancelPool(ctx context.Context, req PoolCancelRequest) error {
	code, err := shared.ParseMemberCode(req.MemberID)
	if err != nil {
		return err
	}
	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return err
	}

	if err := booking.ValidateUnitBounds(req.Beds, req.Umbrellas); err != nil {
		return shared.MarkDomainError(err)
	}

	match := shared.PoolMatch{Beds: req.Beds, Umbrellas: req.Umbrellas}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PoolBookings().Delete(ctx, tx.DB(), code, date, match)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	metrics.RecordCancellation(metrics.ResourcePool)
	return nil
}
