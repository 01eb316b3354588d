package api

import (
	"net/http"

	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	ledger usecase.BookingLedger
}

func NewFieldHandler(ledger usecase.BookingLedger) *FieldHandler {
	return &FieldHandler{ledger: ledger}
}

// @Summary Free field slots
// @Description Hours from 10 to 21 not yet booked for the field on the date
// @Tags fields
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param category path string true "tennis, beach or soccer"
// @Success 200 {object} resdto.FreeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/fields/free/{date}/{category} [get]
func (h *FieldHandler) FreeSlots(c *gin.Context) {
	view, err := h.ledger.FreeFieldSlots(c.Request.Context(), c.Param("date"), c.Param("category"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromFreeSlotsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode free slots", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Book field
// @Description Book one hour of a field for a member
// @Tags fields
// @Accept json
// @Produce json
// @Param request body reqdto.FieldBookingRequest true "Field booking"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/fields/bookings [post]
func (h *FieldHandler) Book(c *gin.Context) {
	var req reqdto.FieldBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_INPUT", "Invalid request", nil)
		return
	}
	result, err := h.ledger.BookField(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{Detail: "field booked", BookingID: result.ID})
}

// @Summary Cancel field booking
// @Description Remove the booking matching member, date, hour and category
// @Tags fields
// @Accept json
// @Produce json
// @Param request body reqdto.FieldBookingRequest true "Field booking"
// @Success 200 {object} resdto.DetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fields/bookings [delete]
func (h *FieldHandler) Cancel(c *gin.Context) {
	var req reqdto.FieldBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_INPUT", "Invalid request", nil)
		return
	}
	if err := h.ledger.CancelField(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DetailResponse{Detail: "field booking cancelled"})
}
