package queries

import (
	"context"

	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"
)

type MemberView struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Surname          string        `json:"surname"`
	RegistrationDate calendar.Date `json:"registration_date"`
}

type MemberReadStore interface {
	FindByID(ctx context.Context, code member.Code) (*MemberView, error)
	Exists(ctx context.Context, code member.Code) (bool, error)
	List(ctx context.Context) ([]*MemberView, error)
}

type MemberQueries interface {
	CheckMember(ctx context.Context, id string) (*MemberView, error)
	MemberExists(ctx context.Context, id string) (bool, error)
	ListMembers(ctx context.Context) ([]*MemberView, error)
}

type memberQueriesImpl struct {
	readStore MemberReadStore
}

func NewMemberQueries(readStore MemberReadStore) MemberQueries {
	return &memberQueriesImpl{readStore: readStore}
}

func (q *memberQueriesImpl) CheckMember(ctx context.Context, id string) (*MemberView, error) {
	code, err := shared.ParseMemberCode(id)
	if err != nil {
		return nil, err
	}
	m, err := q.readStore.FindByID(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}

// MemberExists reports false for ids that cannot be member codes at all.
func (q *memberQueriesImpl) MemberExists(ctx context.Context, id string) (bool, error) {
	code, err := member.NewCode(id)
	if err != nil {
		return false, nil
	}
	ok, err := q.readStore.Exists(ctx, code)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ok, nil
}

// ListMembers returns every member ordered by id.
func (q *memberQueriesImpl) ListMembers(ctx context.Context) ([]*MemberView, error) {
	members, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return members, nil
}
