package models

import (
	"time"

	"gorm.io/datatypes"
)

// MembershipPlan is seeded at startup and read-only to the booking and
// membership engines.
type MembershipPlan struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"not null" json:"name"`
	DurationDays int                         `gorm:"not null" json:"duration_days"`
	Price        float64                     `gorm:"not null" json:"price"`
	Description  string                      `gorm:"not null" json:"description"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	IsActive     bool                        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
