package handler

import (
	"errors"
	"net/http"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
)

func apiError(status int, code string, err error) *echo.HTTPError {
	return echo.NewHTTPError(status, dto.ErrorResponse{Code: code, Message: err.Error()})
}

// toHTTPError maps service sentinel errors to stable HTTP statuses and machine
// codes; anything unmapped surfaces as 500.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return apiError(http.StatusNotFound, "scheduleNotFound", err)
	case errors.Is(err, service.ErrBookingNotFound):
		return apiError(http.StatusNotFound, "bookingNotFound", err)
	case errors.Is(err, service.ErrUserNotFound):
		return apiError(http.StatusNotFound, "userNotFound", err)
	case errors.Is(err, service.ErrClassNotFound):
		return apiError(http.StatusNotFound, "classNotFound", err)
	case errors.Is(err, service.ErrScheduleFull):
		return apiError(http.StatusBadRequest, "scheduleFull", err)
	case errors.Is(err, service.ErrScheduleNotBookable):
		return apiError(http.StatusBadRequest, "scheduleNotBookable", err)
	case errors.Is(err, service.ErrAlreadyBooked):
		return apiError(http.StatusConflict, "duplicateBooking", err)
	case errors.Is(err, service.ErrAlreadyCancelled):
		return apiError(http.StatusBadRequest, "alreadyCancelled", err)
	case errors.Is(err, service.ErrNotBookingOwner):
		return apiError(http.StatusForbidden, "notOwner", err)
	case errors.Is(err, service.ErrIneligibleRole):
		return apiError(http.StatusForbidden, "ineligibleRole", err)
	case errors.Is(err, service.ErrInvalidPlan):
		return apiError(http.StatusBadRequest, "invalidPlan", err)
	case errors.Is(err, service.ErrNoActiveMembership):
		return apiError(http.StatusBadRequest, "noActiveMembership", err)
	case errors.Is(err, service.ErrEmailTaken):
		return apiError(http.StatusConflict, "emailTaken", err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return apiError(http.StatusUnauthorized, "invalidCredentials", err)
	case errors.Is(err, service.ErrInvalidTimeRange):
		return apiError(http.StatusBadRequest, "invalidTimeRange", err)
	case errors.Is(err, service.ErrInvalidCapacity):
		return apiError(http.StatusBadRequest, "invalidCapacity", err)
	case errors.Is(err, service.ErrCapacityBelowBooked):
		return apiError(http.StatusConflict, "capacityBelowBooked", err)
	case errors.Is(err, service.ErrScheduleHasBookings):
		return apiError(http.StatusConflict, "scheduleHasBookings", err)
	case errors.Is(err, service.ErrInvalidDuration):
		return apiError(http.StatusBadRequest, "invalidDuration", err)
	default:
		return apiError(http.StatusInternalServerError, "internal", err)
	}
}

func validationError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{
		Code:    "validation",
		Message: message,
	})
}
