package handler

import (
	"net/http"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	admin := middleware.RequireRole(models.RoleAdmin)
	g.GET("", h.ListUsers, admin)
	g.GET("/:id", h.GetUser, admin)
	g.PUT("/:id", h.UpdateUser, admin)
	g.PUT("/:id/role", h.UpdateUserRole, admin)
	g.DELETE("/:id", h.DeleteUser, admin)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.GetAllUsers(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(users))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), c.Param("id"), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("User updated successfully", user))
}

func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	var req dto.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	switch req.Role {
	case models.RoleCustomer, models.RoleInstructor, models.RoleAdmin:
	default:
		return validationError("role must be customer, instructor or admin")
	}

	user, err := h.svc.UpdateUserRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("User role updated successfully", user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.svc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("User deleted successfully", nil))
}

// GetMe returns the authenticated user's own record.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(user))
}
