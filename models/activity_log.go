package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records one state-changing action with actor and request
// context. Rows are written best-effort by services.ActivityLogger.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LogName     string `gorm:"column:log_name;size:100;index" json:"log_name"`
	Description string `gorm:"type:text" json:"description"`

	CauserID    *uint  `gorm:"column:causer_id;index" json:"causer_id,omitempty"`
	CauserName  string `gorm:"column:causer_name;size:255" json:"causer_name"`
	CauserEmail string `gorm:"column:causer_email;size:255" json:"causer_email"`

	IP        string `gorm:"size:64" json:"ip"`
	UserAgent string `gorm:"column:user_agent;size:512" json:"user_agent"`
	RequestID string `gorm:"column:request_id;size:64" json:"request_id"`

	Properties datatypes.JSON `json:"properties,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
