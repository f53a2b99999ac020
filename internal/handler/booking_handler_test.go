package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitzone/gym-booking/internal/dto"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error)
	cancelFn func(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error)
	getFn    func(ctx context.Context, id uint) (*models.Booking, error)
	listFn   func(ctx context.Context, userID string) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
	return m.createFn(ctx, userID, scheduleID)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error) {
	return m.cancelFn(ctx, bookingID, requestingUserID)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}
func (m *mockBookingService) GetScheduleBookings(ctx context.Context, scheduleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func newBookingContext(method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, models.RoleCustomer)
	return c, rec
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
			return &models.Booking{
				ID:         1,
				UserID:     userID,
				ScheduleID: scheduleID,
				Status:     models.StatusConfirmed,
				CreatedAt:  time.Now(),
			}, nil
		},
	}

	c, rec := newBookingContext(http.MethodPost, "/api/v1/bookings", `{"schedule_id":7}`, "user-1")
	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    dto.BookingResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Data.ID)
	assert.Equal(t, uint(7), resp.Data.ScheduleID)
	assert.Equal(t, models.StatusConfirmed, resp.Data.Status)
	assert.Equal(t, "user-1", resp.Data.UserID)
}

func TestCreateBooking_Handler_MissingScheduleID(t *testing.T) {
	c, _ := newBookingContext(http.MethodPost, "/api/v1/bookings", `{}`, "user-1")
	h := NewBookingHandler(nil)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_ScheduleFull(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
			return nil, service.ErrScheduleFull
		},
	}

	c, _ := newBookingContext(http.MethodPost, "/api/v1/bookings", `{"schedule_id":7}`, "user-1")
	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	body, ok := he.Message.(dto.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "scheduleFull", body.Code)
}

func TestCreateBooking_Handler_Duplicate(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
			return nil, service.ErrAlreadyBooked
		},
	}

	c, _ := newBookingContext(http.MethodPost, "/api/v1/bookings", `{"schedule_id":7}`, "user-1")
	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
	body, _ := he.Message.(dto.ErrorResponse)
	assert.Equal(t, "duplicateBooking", body.Code)
}

func TestCreateBooking_Handler_ScheduleNotFound(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
			return nil, service.ErrScheduleNotFound
		},
	}

	c, _ := newBookingContext(http.MethodPost, "/api/v1/bookings", `{"schedule_id":999}`, "user-1")
	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateBooking_Handler_IneligibleRole(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
			return nil, service.ErrIneligibleRole
		},
	}

	c, _ := newBookingContext(http.MethodPost, "/api/v1/bookings", `{"schedule_id":7}`, "admin-1")
	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCancelBooking_Handler_Success(t *testing.T) {
	var gotUser string
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error) {
			gotUser = requestingUserID
			return &models.Booking{
				ID:         bookingID,
				UserID:     requestingUserID,
				ScheduleID: 7,
				Status:     models.StatusCancelled,
			}, nil
		},
	}

	c, rec := newBookingContext(http.MethodPut, "/api/v1/bookings/3/cancel", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewBookingHandler(svc)
	err := h.CancelBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUser)

	var resp struct {
		Data dto.BookingResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCancelled, resp.Data.Status)
}

func TestCancelBooking_Handler_NotOwner(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error) {
			return nil, service.ErrNotBookingOwner
		},
	}

	c, _ := newBookingContext(http.MethodPut, "/api/v1/bookings/3/cancel", "", "user-2")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewBookingHandler(svc)
	err := h.CancelBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
	body, _ := he.Message.(dto.ErrorResponse)
	assert.Equal(t, "notOwner", body.Code)
}

func TestCancelBooking_Handler_AlreadyCancelled(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error) {
			return nil, service.ErrAlreadyCancelled
		},
	}

	c, _ := newBookingContext(http.MethodPut, "/api/v1/bookings/3/cancel", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewBookingHandler(svc)
	err := h.CancelBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	c, _ := newBookingContext(http.MethodGet, "/api/v1/bookings/999", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewBookingHandler(svc)
	err := h.GetBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetMyBookings_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, userID string) ([]models.Booking, error) {
			return []models.Booking{
				{ID: 2, UserID: userID, ScheduleID: 7, Status: models.StatusConfirmed},
				{ID: 1, UserID: userID, ScheduleID: 5, Status: models.StatusCancelled},
			}, nil
		},
	}

	c, rec := newBookingContext(http.MethodGet, "/api/v1/bookings/me", "", "user-1")
	h := NewBookingHandler(svc)
	err := h.GetMyBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.BookingResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}
