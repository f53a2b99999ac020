package models

import "time"

type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCancelled ScheduleStatus = "cancelled"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Schedule is a single scheduled occurrence of a class with a fixed seat
// capacity. AvailableSpots must always equal TotalSpots minus the number of
// confirmed bookings; only the booking engine's conditional decrement and
// clamped increment (and the guarded capacity edit) may write it.
type Schedule struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ClassID        uint           `gorm:"not null;index" json:"class_id"`
	StartTime      time.Time      `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time      `gorm:"not null" json:"end_time"`
	TotalSpots     int            `gorm:"not null" json:"total_spots"`
	AvailableSpots int            `gorm:"not null" json:"available_spots"`
	Status         ScheduleStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Room           string         `gorm:"not null" json:"room"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (s *Schedule) IsFull() bool {
	return s.AvailableSpots <= 0
}
