package shared

import (
	"errors"
	"strings"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/metrics"
)

func ParseMemberCode(s string) (member.Code, error) {
	code, err := member.NewCode(s)
	if err != nil {
		return member.Code{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return code, nil
}

func ParseDate(s string) (calendar.Date, error) {
	d, err := calendar.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return calendar.Date{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return d, nil
}

func ParseCategory(s string) (booking.Category, error) {
	c, err := booking.NewCategory(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidInput)
	}
	return c, nil
}

// MarkDomainError attaches the public error kind to a domain rule violation.
// Errors that are not domain rule violations pass through unchanged.
func MarkDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrDateNotAfterToday):
		return errs.Mark(err, errs.ErrInvalidDate)
	case errors.Is(err, booking.ErrHourOutOfRange):
		return errs.Mark(err, errs.ErrInvalidSlot)
	case errors.Is(err, booking.ErrNotInSeason):
		return errs.Mark(err, errs.ErrOutOfSeason)
	case errors.Is(err, booking.ErrPoolFull):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errors.Is(err, booking.ErrInvalidCategory),
		errors.Is(err, booking.ErrNegativeUnits),
		errors.Is(err, booking.ErrUnitsOutOfRange),
		errors.Is(err, member.ErrInvalidCode),
		errors.Is(err, member.ErrEmptyName),
		errors.Is(err, member.ErrEmptySurname),
		errors.Is(err, member.ErrNameTooLong),
		errors.Is(err, member.ErrSurnameTooLong):
		return errs.Mark(err, errs.ErrInvalidInput)
	default:
		return err
	}
}

// Outcome is the metrics label for the result of an operation.
func Outcome(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}
	if kind := errs.Kind(err); kind != "" {
		return strings.ToLower(kind)
	}
	return "error"
}
