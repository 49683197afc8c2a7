package models

import "time"

// Role names seeded at startup. SystemAdmin actors see and manage every
// booking; Client actors are scoped to rows they created.
const (
	RoleSystemAdmin = "System Admin"
	RoleClient      = "Client"
)

type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
