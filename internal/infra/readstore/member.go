package readstore

import (
	"context"

	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/queries"
)

type MemberReadQueries interface {
	GetMember(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Members, error)
	MemberExists(ctx context.Context, db sqlc.DBTX, id string) (bool, error)
	ListMembers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Members, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db sqlc.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindByID(ctx context.Context, code member.Code) (*queries.MemberView, error) {
	row, err := r.queries.GetMember(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get member", err)
	}
	return toMemberView(row), nil
}

func (r *MemberReadStore) Exists(ctx context.Context, code member.Code) (bool, error) {
	ok, err := r.queries.MemberExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check member", err)
	}
	return ok, nil
}

func (r *MemberReadStore) List(ctx context.Context) ([]*queries.MemberView, error) {
	rows, err := r.queries.ListMembers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	views := make([]*queries.MemberView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toMemberView(row))
	}
	return views, nil
}

func toMemberView(row sqlc.Members) *queries.MemberView {
	return &queries.MemberView{
		ID:               row.ID,
		Name:             row.Name,
		Surname:          row.Surname,
		RegistrationDate: pgconv.DateFromPgtype(row.RegistrationDate),
	}
}
