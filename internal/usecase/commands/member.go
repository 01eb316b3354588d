package commands

import (
	"context"
	"log/slog"
	"time"

	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
	"club-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
)

const CascadeWarning = "member deleted but bookings could not be cleaned up"

type RegisterMemberRequest struct {
	ID      string
	Name    string
	Surname string
}

type RemoveMemberResult struct {
	ID member.Code
	// Warning is set when the member row is gone but the ledger purge failed.
	Warning string
}

type MemberCommands interface {
	RegisterMember(ctx context.Context, req RegisterMemberRequest) (*member.Member, error)
	RemoveMember(ctx context.Context, id string) (*RemoveMemberResult, error)
}

type memberCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *calendar.Calendar
	purger   BookingPurger
	policy   CascadePolicy
	logger   *slog.Logger
}

func NewMemberCommands(uow shared.UnitOfWork, cal *calendar.Calendar, purger BookingPurger, policy CascadePolicy, logger *slog.Logger) MemberCommands {
	return &memberCommandsImpl{
		uow:      uow,
		calendar: cal,
		purger:   purger,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *memberCommandsImpl) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*member.Member, error) {
	code, err := shared.ParseMemberCode(req.ID)
	if err != nil {
		return nil, err
	}
	m, err := member.NewMember(code, req.Name, req.Surname, uc.calendar.Today())
	if err != nil {
		return nil, shared.MarkDomainError(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Members().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrAlreadyExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}

// RemoveMember succeeds once the member row is deleted. The booking purge that
// follows is best effort: its failure is reported as a warning, not an error.
func (uc *memberCommandsImpl) RemoveMember(ctx context.Context, id string) (*RemoveMemberResult, error) {
	code, err := shared.ParseMemberCode(id)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Members().Delete(ctx, tx.DB(), code)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &RemoveMemberResult{ID: code}
	if err := uc.cascade(ctx, code); err != nil {
		uc.logger.Error("booking purge failed after member deletion",
			"member_id", code.String(),
			"error", err.Error())
		metrics.RecordCascade(metrics.ResultFailure)
		result.Warning = CascadeWarning
		return result, nil
	}
	metrics.RecordCascade(metrics.ResultSuccess)
	return result, nil
}

// cascade ignores the caller's cancellation and is bounded by the policy budget.
func (uc *memberCommandsImpl) cascade(ctx context.Context, code member.Code) error {
	ctx = context.WithoutCancel(ctx)
	if uc.policy.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.policy.Budget)
		defer cancel()
	}

	b := backoff.NewExponentialBackOff()
	if uc.policy.InitialBackoff > 0 {
		b.InitialInterval = uc.policy.InitialBackoff
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uc.policy.MaxRetries), ctx)

	op := func() error {
		err := uc.purger.PurgeFutureBookings(ctx, code)
		if err == nil || errs.Is(err, errs.ErrDependencyUnreachable) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		uc.logger.Warn("retrying booking purge",
			"member_id", code.String(),
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}
	return backoff.RetryNotify(op, policy, notify)
}
