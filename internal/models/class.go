package models

import "time"

// Class is the descriptive definition of a course; scheduled occurrences live
// in Schedule.
type Class struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null;index" json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	InstructorID    string    `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Level           string    `gorm:"type:varchar(20)" json:"level,omitempty"`
	Category        string    `gorm:"type:varchar(40)" json:"category,omitempty"`
	MaxCapacity     int       `gorm:"not null;default:20" json:"max_capacity"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
