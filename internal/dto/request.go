package dto

import (
	"time"

	"github.com/fitzone/gym-booking/internal/models"
)

type RegisterRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role"`
	PlanID   *uint       `json:"plan_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateBookingRequest struct {
	ScheduleID uint `json:"schedule_id" validate:"required"`
}

type RenewMembershipRequest struct {
	PlanID uint `json:"plan_id" validate:"required"`
}

type CreateScheduleRequest struct {
	ClassID    uint      `json:"class_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	TotalSpots int       `json:"total_spots" validate:"required,gt=0"`
	Room       string    `json:"room" validate:"required"`
}

type UpdateScheduleRequest struct {
	StartTime  *time.Time             `json:"start_time"`
	EndTime    *time.Time             `json:"end_time"`
	TotalSpots *int                   `json:"total_spots"`
	Room       *string                `json:"room"`
	Status     *models.ScheduleStatus `json:"status"`
}

type CreateClassRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=15,lte=180"`
	InstructorID    string `json:"instructor_id" validate:"required"`
	Level           string `json:"level"`
	Category        string `json:"category"`
	MaxCapacity     int    `json:"max_capacity"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}
