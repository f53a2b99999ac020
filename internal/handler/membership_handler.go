package handler

import (
	"net/http"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type MembershipHandler struct {
	svc service.MembershipService
}

func NewMembershipHandler(svc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// RegisterRoutes mounts the public plan catalog and the authenticated
// membership endpoints on separate groups.
func (h *MembershipHandler) RegisterRoutes(public, me *echo.Group) {
	public.GET("/plans", h.GetPlans)
	me.GET("/membership", h.GetMyMembership)
	me.POST("/membership/cancel", h.CancelMembership)
	me.POST("/membership/renew", h.RenewMembership)
}

func (h *MembershipHandler) GetPlans(c echo.Context) error {
	plans, err := h.svc.GetAvailablePlans(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(plans))
}

func (h *MembershipHandler) GetMyMembership(c echo.Context) error {
	membership, err := h.svc.CheckMembershipStatus(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(membership))
}

func (h *MembershipHandler) CancelMembership(c echo.Context) error {
	membership, err := h.svc.CancelMembership(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Membership cancelled; access remains until the end date", membership))
}

func (h *MembershipHandler) RenewMembership(c echo.Context) error {
	var req dto.RenewMembershipRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.PlanID == 0 {
		return validationError("plan_id is required")
	}

	membership, err := h.svc.RenewMembership(c.Request().Context(), middleware.UserID(c), req.PlanID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Membership renewed successfully", membership))
}
