package member

import (
	"errors"
	"regexp"
	"strings"
)

const CodeLength = 16

var (
	ErrInvalidCode    = errors.New("member code must be exactly 16 letters or digits")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrEmptySurname   = errors.New("surname must not be empty")
	ErrNameTooLong    = errors.New("name must be at most 50 characters")
	ErrSurnameTooLong = errors.New("surname must be at most 50 characters")
)

const maxNameLength = 50

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// Code is the member's national identification code, always upper case.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) IsZero() bool {
	return c.value == ""
}

func ValidCode(s string) bool {
	_, err := NewCode(s)
	return err == nil
}

func newPersonName(s string, emptyErr, tooLongErr error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", emptyErr
	}
	if len([]rune(s)) > maxNameLength {
		return "", tooLongErr
	}
	return s, nil
}
