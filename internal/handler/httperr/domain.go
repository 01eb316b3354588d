package httperr

import (
	"net/http"

	"club-booking/internal/domain/booking"
	"club-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Public is the client-facing view of an error.
type Public struct {
	Status  int
	Code    string
	Message string
	Detail  any
}

type CapacityDetail struct {
	Resource  string `json:"resource"`
	Available int    `json:"available"`
	Date      string `json:"date"`
}

var statusByKind = map[string]int{
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_DATE":           http.StatusBadRequest,
	"OUT_OF_SEASON":          http.StatusBadRequest,
	"INVALID_SLOT":           http.StatusBadRequest,
	"ALREADY_EXISTS":         http.StatusConflict,
	"DUPLICATE_BOOKING":      http.StatusConflict,
	"SLOT_TAKEN":             http.StatusConflict,
	"CAPACITY_EXCEEDED":      http.StatusConflict,
	"NOT_FOUND":              http.StatusNotFound,
	"MEMBER_NOT_FOUND":       http.StatusNotFound,
	"DEPENDENCY_UNREACHABLE": http.StatusServiceUnavailable,
}

var messageByKind = map[string]string{
	"ALREADY_EXISTS":         "Member already registered",
	"DUPLICATE_BOOKING":      "Member already holds a pool booking on this date",
	"SLOT_TAKEN":             "Field slot already booked",
	"NOT_FOUND":              "Not found",
	"MEMBER_NOT_FOUND":       "Member does not exist",
	"DEPENDENCY_UNREACHABLE": "Dependent service unavailable",
}

// FromDomain classifies err by the error kind it carries. Validation kinds keep
// the domain message; unknown errors become an opaque 500.
func FromDomain(err error) Public {
	kind := errs.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		return Public{Status: http.StatusInternalServerError, Code: "INTERNAL", Message: "Internal server error"}
	}

	p := Public{Status: status, Code: kind}
	var capErr *booking.CapacityError
	switch {
	case errs.As(err, &capErr):
		p.Message = capErr.Error()
		p.Detail = CapacityDetail{Resource: capErr.Resource, Available: capErr.Available, Date: capErr.Date.String()}
	case status == http.StatusBadRequest:
		p.Message = err.Error()
	default:
		p.Message = messageByKind[kind]
	}
	return p
}

func AbortWithDomainError(c *gin.Context, err error) {
	p := FromDomain(err)
	AbortWithCode(c, p.Status, err, p.Code, p.Message, p.Detail)
}
