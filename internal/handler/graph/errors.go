package graph

import (
	"club-booking/internal/handler/httperr"
)

// Error exposes a domain failure in the errors array with extensions.code set
// to the error kind.
type Error struct {
	cause  error
	public httperr.Public
}

func newError(err error) *Error {
	return &Error{cause: err, public: httperr.FromDomain(err)}
}

func (e *Error) Error() string {
	return e.public.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.public.Code}
	if e.public.Detail != nil {
		ext["detail"] = e.public.Detail
	}
	return ext
}
