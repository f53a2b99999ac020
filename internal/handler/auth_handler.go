package handler

import (
	"net/http"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return validationError("email and password are required")
	}
	if len(req.Password) < 6 {
		return validationError("password must be at least 6 characters")
	}
	// Privileged roles are assigned by an admin afterwards, never self-claimed
	if req.Role != "" && req.Role != models.RoleCustomer {
		return validationError("role must be customer")
	}

	user, err := h.svc.Register(c.Request().Context(), req.Email, req.Password, req.Role, req.PlanID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("User registered successfully", user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return validationError("email and password are required")
	}

	user, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{User: user, Token: token}))
}
