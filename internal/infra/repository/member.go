package repository

import (
	"context"

	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/pgconv"
)

type MemberWriteQueries interface {
	CreateMember(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMemberParams) (int64, error)
	DeleteMember(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
}

type MemberRepository struct {
	queries MemberWriteQueries
}

func NewMemberRepository(queries MemberWriteQueries) *MemberRepository {
	return &MemberRepository{queries: queries}
}

func (r *MemberRepository) Create(ctx context.Context, tx sqlc.DBTX, m *member.Member) error {
	n, err := r.queries.CreateMember(ctx, tx, sqlc.CreateMemberParams{
		ID:               m.Code().String(),
		Name:             m.Name(),
		Surname:          m.Surname(),
		RegistrationDate: pgconv.DateToPgtype(m.RegistrationDate()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create member", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("member already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, tx sqlc.DBTX, code member.Code) error {
	n, err := r.queries.DeleteMember(ctx, tx, code.String())
	if err != nil {
		return infra.WrapRepoErr("failed to delete member", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}
