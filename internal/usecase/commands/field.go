package commands

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
	"club-booking/internal/usecase/shared"
)

type FieldBookingRequest struct {
	MemberID string
	Date     string
	Hour     int
	Category string
}

type FieldCommands interface {
	BookField(ctx context.Context, req FieldBookingRequest) (*BookingResult, error)
	CancelField(ctx context.Context, req FieldBookingRequest) error
}

type fieldCommandsImpl struct {
	uow        shared.UnitOfWork
	calendar   *calendar.Calendar
	membership MembershipChecker
}

func NewFieldCommands(uow shared.UnitOfWork, cal *calendar.Calendar, membership MembershipChecker) FieldCommands {
	return &fieldCommandsImpl{
		uow:        uow,
		calendar:   cal,
		membership: membership,
	}
}

func (uc *fieldCommandsImpl) BookField(ctx context.Context, req FieldBookingRequest) (*BookingResult, error) {
	res, err := uc.bookField(ctx, req)
	metrics.RecordBooking(metrics.ResourceField, shared.Outcome(err))
	return res, err
}

func (uc *fieldCommandsImpl) bookField(ctx context.Context, req FieldBookingRequest) (*BookingResult, error) {
	code, slot, err := parseFieldRequest(req)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewFieldBooking(uc.calendar.Today(), code, slot)
	if err != nil {
		return nil, shared.MarkDomainError(err)
	}

	if err := requireMember(ctx, uc.membership, code); err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		id, derr = tx.FieldBookings().Create(ctx, tx.DB(), b)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrSlotTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &BookingResult{ID: id}, nil
}

// CancelField removes the exact booking; it does not consult the registry.
// An hour outside opening time can never match and is rejected before the
// database sees it.
func (uc *fieldCommandsImpl) CancelField(ctx context.Context, req FieldBookingRequest) error {
	code, slot, err := parseFieldRequest(req)
	if err != nil {
		return err
	}
	if err := booking.ValidateHour(slot.Hour); err != nil {
		return shared.MarkDomainError(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.FieldBookings().Delete(ctx, tx.DB(), code, slot)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	metrics.RecordCancellation(metrics.ResourceField)
	return nil
}

func parseFieldRequest(req FieldBookingRequest) (member.Code, booking.FieldSlot, error) {
	code, err := shared.ParseMemberCode(req.MemberID)
	if err != nil {
		return member.Code{}, booking.FieldSlot{}, err
	}
	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return member.Code{}, booking.FieldSlot{}, err
	}
	category, err := shared.ParseCategory(req.Category)
	if err != nil {
		return member.Code{}, booking.FieldSlot{}, err
	}
	return code, booking.FieldSlot{Date: date, Hour: req.Hour, Category: category}, nil
}

func requireMember(ctx context.Context, membership MembershipChecker, code member.Code) error {
	ok, err := membership.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Mark(errs.New("member "+code.String()+" is not registered"), errs.ErrMemberNotFound)
	}
	return nil
}
