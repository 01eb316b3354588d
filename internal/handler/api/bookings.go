package api

import (
	"net/http"

	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingsHandler struct {
	ledger usecase.BookingLedger
}

func NewBookingsHandler(ledger usecase.BookingLedger) *BookingsHandler {
	return &BookingsHandler{ledger: ledger}
}

// @Summary Upcoming bookings
// @Description Field and pool bookings of a member dated today or later
// @Tags bookings
// @Produce json
// @Param id path string true "Member code (16 characters)"
// @Success 200 {object} resdto.MemberBookingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/members/{id} [get]
func (h *BookingsHandler) Upcoming(c *gin.Context) {
	view, err := h.ledger.UpcomingBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromMemberBookingsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode bookings", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Purge future bookings
// @Description Delete every booking of the member dated today or later. Idempotent.
// @Tags bookings
// @Param id path string true "Member code (16 characters)"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/members/{id} [delete]
func (h *BookingsHandler) Purge(c *gin.Context) {
	if _, err := h.ledger.PurgeFutureBookings(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
