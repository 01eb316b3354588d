package request

import "club-booking/internal/usecase/commands"

type AddMemberRequest struct {
	ID      string `json:"id" binding:"required,membercode"`
	Name    string `json:"name" binding:"required,max=50"`
	Surname string `json:"surname" binding:"required,max=50"`
}

func (r *AddMemberRequest) ToCommand() commands.RegisterMemberRequest {
	return commands.RegisterMemberRequest{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
	}
}
