package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct {
	svc        service.ScheduleService
	bookingSvc service.BookingService
}

func NewScheduleHandler(svc service.ScheduleService, bookingSvc service.BookingService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, bookingSvc: bookingSvc}
}

func (h *ScheduleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListSchedules)
	g.GET("/:id", h.GetSchedule)
	g.POST("", h.CreateSchedule, middleware.RequireRole(models.RoleAdmin))
	g.PUT("/:id", h.UpdateSchedule, middleware.RequireRole(models.RoleAdmin))
	g.DELETE("/:id", h.DeleteSchedule, middleware.RequireRole(models.RoleAdmin))
	g.GET("/:id/bookings", h.GetScheduleBookings, middleware.RequireRole(models.RoleAdmin))
}

func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	var req dto.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.ClassID == 0 || req.Room == "" {
		return validationError("class_id and room are required")
	}

	schedule := &models.Schedule{
		ClassID:    req.ClassID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalSpots: req.TotalSpots,
		Room:       req.Room,
	}

	if err := h.svc.CreateSchedule(c.Request().Context(), schedule); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Schedule created successfully", dto.ToScheduleResponse(schedule)))
}

func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid schedule id")
	}

	schedule, err := h.svc.GetSchedule(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OK(dto.ToScheduleResponse(schedule)))
}

func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	filter, err := parseScheduleFilter(c)
	if err != nil {
		return validationError(err.Error())
	}

	schedules, err := h.svc.ListSchedules(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ScheduleResponse, len(schedules))
	for i, s := range schedules {
		resp[i] = dto.ToScheduleResponse(&s)
	}
	return c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *ScheduleHandler) UpdateSchedule(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid schedule id")
	}

	var req dto.UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}

	schedule, err := h.svc.UpdateSchedule(c.Request().Context(), uint(id), service.ScheduleUpdate{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Room:       req.Room,
		Status:     req.Status,
		TotalSpots: req.TotalSpots,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Schedule updated successfully", dto.ToScheduleResponse(schedule)))
}

func (h *ScheduleHandler) DeleteSchedule(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid schedule id")
	}

	if err := h.svc.DeleteSchedule(c.Request().Context(), uint(id)); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Schedule deleted successfully", nil))
}

func (h *ScheduleHandler) GetScheduleBookings(c echo.Context) error {
	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid schedule id")
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		status = &bs
	}

	bookings, err := h.bookingSvc.GetScheduleBookings(c.Request().Context(), uint(scheduleID), status)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, dto.OK(resp))
}

func parseScheduleFilter(c echo.Context) (repository.ScheduleFilter, error) {
	var filter repository.ScheduleFilter

	if v := c.QueryParam("class_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid query parameter: class_id")
		}
		classID := uint(id)
		filter.ClassID = &classID
	}
	if v := c.QueryParam("date"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, fmt.Errorf("invalid query parameter: date")
		}
		filter.Date = &day
	}
	if v := c.QueryParam("status"); v != "" {
		status := models.ScheduleStatus(v)
		filter.Status = &status
	}
	filter.InstructorID = c.QueryParam("instructor_id")
	filter.Level = c.QueryParam("level")
	filter.Category = c.QueryParam("category")

	return filter, nil
}
