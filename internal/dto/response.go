package dto

import (
	"time"

	"github.com/fitzone/gym-booking/internal/models"
)

// Envelope is the uniform success body: {"success":true,"data":...}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse carries a stable machine-readable code next to the human
// message so clients can render specific failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(msg string, data any) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

type ScheduleResponse struct {
	ID             uint                  `json:"id"`
	ClassID        uint                  `json:"class_id"`
	ClassName      string                `json:"class_name,omitempty"`
	InstructorID   string                `json:"instructor_id,omitempty"`
	Level          string                `json:"level,omitempty"`
	Category       string                `json:"category,omitempty"`
	StartTime      time.Time             `json:"start_time"`
	EndTime        time.Time             `json:"end_time"`
	TotalSpots     int                   `json:"total_spots"`
	AvailableSpots int                   `json:"available_spots"`
	Status         models.ScheduleStatus `json:"status"`
	Room           string                `json:"room"`
}

type BookingResponse struct {
	ID         uint                 `json:"id"`
	UserID     string               `json:"user_id"`
	ScheduleID uint                 `json:"schedule_id"`
	Status     models.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	Schedule   *ScheduleResponse    `json:"schedule,omitempty"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func ToScheduleResponse(s *models.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:             s.ID,
		ClassID:        s.ClassID,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		TotalSpots:     s.TotalSpots,
		AvailableSpots: s.AvailableSpots,
		Status:         s.Status,
		Room:           s.Room,
	}
	if s.Class != nil {
		resp.ClassName = s.Class.Name
		resp.InstructorID = s.Class.InstructorID
		resp.Level = s.Class.Level
		resp.Category = s.Class.Category
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		ScheduleID: b.ScheduleID,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
	if b.Schedule != nil {
		s := ToScheduleResponse(b.Schedule)
		resp.Schedule = &s
	}
	return resp
}
