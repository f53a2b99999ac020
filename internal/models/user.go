package models

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

type MembershipStatus string

const (
	MembershipNone      MembershipStatus = "none"
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipCancelled MembershipStatus = "cancelled"
)

// Membership is embedded in the user record: a user holds at most one
// membership at a time, overwritten on renewal.
type Membership struct {
	Status    MembershipStatus `gorm:"type:varchar(20);not null;default:'none'" json:"status"`
	Type      string           `gorm:"type:varchar(20)" json:"type,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
	PlanID    *uint            `json:"plan_id,omitempty"`
	AutoRenew bool             `gorm:"not null;default:false" json:"auto_renew"`
}

type User struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Password   string     `gorm:"not null" json:"-"`
	Role       Role       `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	Membership Membership `gorm:"embedded;embeddedPrefix:membership_" json:"membership"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
