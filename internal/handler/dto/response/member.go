package response

import (
	"club-booking/internal/domain/member"
	"club-booking/internal/usecase/queries"
)

type MemberResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	RegistrationDate string `json:"registration_date"`
}

func FromMemberView(v *queries.MemberView) (*MemberResponse, error) {
	var res MemberResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromMemberViews(vs []*queries.MemberView) ([]*MemberResponse, error) {
	res := make([]*MemberResponse, 0, len(vs))
	if err := copyInto(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromMember(m *member.Member) *MemberResponse {
	return &MemberResponse{
		ID:               m.Code().String(),
		Name:             m.Name(),
		Surname:          m.Surname(),
		RegistrationDate: m.RegistrationDate().String(),
	}
}

type MemberExistsResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

type DetailResponse struct {
	Detail  string `json:"detail"`
	Warning string `json:"warning,omitempty"`
}
