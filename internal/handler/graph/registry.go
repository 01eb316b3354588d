package graph

import (
	"context"

	"club-booking/internal/usecase"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
)

type RegistryResolver struct {
	svc usecase.MembershipService
}

func NewRegistryResolver(svc usecase.MembershipService) *RegistryResolver {
	return &RegistryResolver{svc: svc}
}

type memberResolver struct {
	v *queries.MemberView
}

func (r *memberResolver) ID() string               { return r.v.ID }
func (r *memberResolver) Name() string             { return r.v.Name }
func (r *memberResolver) Surname() string          { return r.v.Surname }
func (r *memberResolver) RegistrationDate() string { return r.v.RegistrationDate.String() }

type detailResolver struct {
	detail  string
	warning *string
}

func (r *detailResolver) Detail() string   { return r.detail }
func (r *detailResolver) Warning() *string { return r.warning }

func (r *RegistryResolver) CheckMember(ctx context.Context, args struct{ ID string }) (*memberResolver, error) {
	view, err := r.svc.CheckMember(ctx, args.ID)
	if err != nil {
		return nil, newError(err)
	}
	return &memberResolver{v: view}, nil
}

func (r *RegistryResolver) AllMembers(ctx context.Context) ([]*memberResolver, error) {
	views, err := r.svc.ListMembers(ctx)
	if err != nil {
		return nil, newError(err)
	}
	out := make([]*memberResolver, 0, len(views))
	for _, v := range views {
		out = append(out, &memberResolver{v: v})
	}
	return out, nil
}

type memberInput struct {
	ID      string
	Name    string
	Surname string
}

func (r *RegistryResolver) AddMember(ctx context.Context, args struct{ Member memberInput }) (*detailResolver, error) {
	m, err := r.svc.RegisterMember(ctx, commands.RegisterMemberRequest{
		ID:      args.Member.ID,
		Name:    args.Member.Name,
		Surname: args.Member.Surname,
	})
	if err != nil {
		return nil, newError(err)
	}
	return &detailResolver{detail: "member " + m.Code().String() + " added"}, nil
}

func (r *RegistryResolver) DeleteMember(ctx context.Context, args struct{ ID string }) (*detailResolver, error) {
	result, err := r.svc.RemoveMember(ctx, args.ID)
	if err != nil {
		return nil, newError(err)
	}
	res := &detailResolver{detail: "member " + result.ID.String() + " deleted"}
	if result.Warning != "" {
		res.warning = &result.Warning
	}
	return res, nil
}
