package handler

import (
	"net/http"
	"strconv"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type ClassHandler struct {
	svc service.ClassService
}

func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

func (h *ClassHandler) RegisterRoutes(g *echo.Group) {
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleInstructor)
	g.GET("", h.ListClasses)
	g.GET("/:id", h.GetClass)
	g.POST("", h.CreateClass, staff)
	g.PUT("/:id", h.UpdateClass, staff)
	g.DELETE("/:id", h.DeleteClass, staff)
}

func (h *ClassHandler) CreateClass(c echo.Context) error {
	var req dto.CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.Name == "" || req.InstructorID == "" {
		return validationError("name and instructor_id are required")
	}

	class := &models.Class{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		InstructorID:    req.InstructorID,
		Level:           req.Level,
		Category:        req.Category,
		MaxCapacity:     req.MaxCapacity,
	}

	if err := h.svc.CreateClass(c.Request().Context(), class); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Class created successfully", class))
}

func (h *ClassHandler) GetClass(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid class id")
	}

	class, err := h.svc.GetClass(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(class))
}

func (h *ClassHandler) ListClasses(c echo.Context) error {
	classes, err := h.svc.ListClasses(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(classes))
}

func (h *ClassHandler) UpdateClass(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid class id")
	}

	var req dto.CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}

	class, err := h.svc.UpdateClass(c.Request().Context(), uint(id), &models.Class{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		InstructorID:    req.InstructorID,
		Level:           req.Level,
		Category:        req.Category,
		MaxCapacity:     req.MaxCapacity,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Class updated successfully", class))
}

func (h *ClassHandler) DeleteClass(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid class id")
	}

	if err := h.svc.DeleteClass(c.Request().Context(), uint(id)); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Class deleted successfully", nil))
}
