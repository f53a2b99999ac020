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

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking, middleware.RequireRole(models.RoleCustomer))
	g.GET("/me", h.GetMyBookings, middleware.RequireRole(models.RoleCustomer))
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id/cancel", h.CancelBooking, middleware.RequireRole(models.RoleCustomer))
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if req.ScheduleID == 0 {
		return validationError("schedule_id is required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), middleware.UserID(c), req.ScheduleID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.OKMessage("Booking created successfully", dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid booking id")
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), uint(bookingID), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.OKMessage("Booking cancelled successfully", dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationError("invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	bookings, err := h.svc.GetUserBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, dto.OK(resp))
}
