package usecase

import (
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
)

// MembershipService is the registry capability both transports are built on.
type MembershipService interface {
	commands.MemberCommands
	queries.MemberQueries
}

type membershipService struct {
	commands.MemberCommands
	queries.MemberQueries
}

func NewMembershipService(cmd commands.MemberCommands, q queries.MemberQueries) MembershipService {
	return &membershipService{MemberCommands: cmd, MemberQueries: q}
}
