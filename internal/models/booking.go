package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking transitions confirmed -> cancelled only; cancelled is terminal.
type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	UserID     string        `gorm:"type:uuid;not null;index" json:"user_id"`
	ScheduleID uint          `gorm:"not null;index" json:"schedule_id"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}
