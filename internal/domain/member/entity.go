package member

import (
	"club-booking/internal/pkg/calendar"
)

type Member struct {
	code             Code
	name             string
	surname          string
	registrationDate calendar.Date
}

// NewMember registers a member on the given day. Members are immutable afterwards.
func NewMember(code Code, name, surname string, registeredOn calendar.Date) (*Member, error) {
	if code.IsZero() {
		return nil, ErrInvalidCode
	}
	n, err := newPersonName(name, ErrEmptyName, ErrNameTooLong)
	if err != nil {
		return nil, err
	}
	sn, err := newPersonName(surname, ErrEmptySurname, ErrSurnameTooLong)
	if err != nil {
		return nil, err
	}
	return &Member{
		code:             code,
		name:             n,
		surname:          sn,
		registrationDate: registeredOn,
	}, nil
}

func ReconstructMember(code Code, name, surname string, registrationDate calendar.Date) *Member {
	return &Member{
		code:             code,
		name:             name,
		surname:          surname,
		registrationDate: registrationDate,
	}
}

func (m *Member) Code() Code                      { return m.code }
func (m *Member) Name() string                    { return m.name }
func (m *Member) Surname() string                 { return m.surname }
func (m *Member) RegistrationDate() calendar.Date { return m.registrationDate }
