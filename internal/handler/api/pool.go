package api

import (
	"net/http"

	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	ledger usecase.BookingLedger
}

func NewPoolHandler(ledger usecase.BookingLedger) *PoolHandler {
	return &PoolHandler{ledger: ledger}
}

// @Summary Free pool capacity
// @Description Beds and umbrellas still free on the date; zero outside the season
// @Tags pool
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.PoolAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pool/free/{date} [get]
func (h *PoolHandler) Free(c *gin.Context) {
	view, err := h.ledger.FreePoolCapacity(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPoolAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode pool capacity", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Book pool
// @Description Reserve beds and umbrellas for a member on one date
// @Tags pool
// @Accept json
// @Produce json
// @Param request body reqdto.PoolBookingRequest true "Pool booking"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/pool/bookings [post]
func (h *PoolHandler) Book(c *gin.Context) {
	var req reqdto.PoolBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_INPUT", "Invalid request", nil)
		return
	}
	result, err := h.ledger.BookPool(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{Detail: "pool booked", BookingID: result.ID})
}

// @Summary Cancel pool booking
// @Description Remove the member's pool booking on the date. Beds and umbrellas, when given, must match.
// @Tags pool
// @Accept json
// @Produce json
// @Param request body reqdto.PoolCancelRequest true "Pool cancellation"
// @Success 200 {object} resdto.DetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pool/bookings [delete]
func (h *PoolHandler) Cancel(c *gin.Context) {
	var req reqdto.PoolCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_INPUT", "Invalid request", nil)
		return
	}
	if err := h.ledger.CancelPool(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DetailResponse{Detail: "pool booking cancelled"})
}
