//go:build unit || e2e

package builder

import (
	"time"

	"club-booking/internal/domain/member"
	reqdto "club-booking/internal/handler/dto/request"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultMemberCode = "CF0000000000001A"

type MemberBuilder struct {
	ID           string
	Name         string
	Surname      string
	RegisteredOn calendar.Date
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:           DefaultMemberCode,
		Name:         "Mario",
		Surname:      "Rossi",
		RegisteredOn: calendar.NewDate(2026, time.June, 1),
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.ID = id
	return b
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.Name = name
	return b
}

func (b *MemberBuilder) WithSurname(surname string) *MemberBuilder {
	b.Surname = surname
	return b
}

// Build methods
func (b *MemberBuilder) BuildCode() member.Code {
	code, err := member.NewCode(b.ID)
	if err != nil {
		panic("builder: invalid member code " + b.ID)
	}
	return code
}

func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	code, err := member.NewCode(b.ID)
	if err != nil {
		return nil, err
	}
	return member.NewMember(code, b.Name, b.Surname, b.RegisteredOn)
}

func (b *MemberBuilder) BuildInfra() sqlc.Members {
	return sqlc.Members{
		ID:               b.ID,
		Name:             b.Name,
		Surname:          b.Surname,
		RegistrationDate: pgconv.DateToPgtype(b.RegisteredOn),
		CreatedAt:        pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *MemberBuilder) BuildView() *queries.MemberView {
	return &queries.MemberView{
		ID:               b.ID,
		Name:             b.Name,
		Surname:          b.Surname,
		RegistrationDate: b.RegisteredOn,
	}
}

func (b *MemberBuilder) BuildCommand() commands.RegisterMemberRequest {
	return commands.RegisterMemberRequest{ID: b.ID, Name: b.Name, Surname: b.Surname}
}

func (b *MemberBuilder) BuildRequestDTO() reqdto.AddMemberRequest {
	return reqdto.AddMemberRequest{ID: b.ID, Name: b.Name, Surname: b.Surname}
}
