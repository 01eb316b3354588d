package api

import (
	"net/http"

	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc usecase.MembershipService
}

func NewMemberHandler(svc usecase.MembershipService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// @Summary Check member
// @Description Get a member by national ID code
// @Tags members
// @Produce json
// @Param id path string true "Member code (16 characters)"
// @Success 200 {object} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/members/{id} [get]
func (h *MemberHandler) Check(c *gin.Context) {
	view, err := h.svc.CheckMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromMemberView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode member", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List members
// @Description List every registered member ordered by code
// @Tags members
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Router /api/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	views, err := h.svc.ListMembers(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromMemberViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode members", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Member exists
// @Description Report whether a member is registered. Always 200 so callers can tell a missing member from a missing route.
// @Tags members
// @Produce json
// @Param id path string true "Member code (16 characters)"
// @Success 200 {object} resdto.MemberExistsResponse
// @Router /api/members/{id}/exists [get]
func (h *MemberHandler) Exists(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.svc.MemberExists(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MemberExistsResponse{ID: id, Exists: ok})
}

// @Summary Add member
// @Description Register a member; the registration date is today
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.AddMemberRequest true "Member"
// @Success 201 {object} resdto.DetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	var req reqdto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_INPUT", "Invalid request", nil)
		return
	}
	m, err := h.svc.RegisterMember(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.DetailResponse{Detail: "member " + m.Code().String() + " added"})
}

// @Summary Delete member
// @Description Delete a member and purge their future bookings. A failed purge is reported as a warning.
// @Tags members
// @Produce json
// @Param id path string true "Member code (16 characters)"
// @Success 200 {object} resdto.DetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	result, err := h.svc.RemoveMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DetailResponse{
		Detail:  "member " + result.ID.String() + " deleted",
		Warning: result.Warning,
	})
}
