package services

import (
	"encoding/json"
	"log"

	"mingo-hotel-api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Actor identifies who is performing an operation. Controllers build it
// from the authenticated user in the request context.
type Actor struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the actor may see and manage all bookings.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleSystemAdmin }

// RequestMeta carries request context into audit records.
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

// ActivityLogger records state-changing actions with actor and request
// context. Recording is best-effort: a failed audit write is logged and
// never fails the operation that triggered it.
type ActivityLogger struct {
	DB *gorm.DB
}

func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{DB: db}
}

// Record writes an audit row using the logger's own connection.
func (l *ActivityLogger) Record(actor Actor, meta RequestMeta, logName, message string, properties map[string]any) {
	l.RecordTx(l.DB, actor, meta, logName, message, properties)
}

// RecordTx writes an audit row on the given transaction so booking
// mutations and their audit trail commit together.
func (l *ActivityLogger) RecordTx(tx *gorm.DB, actor Actor, meta RequestMeta, logName, message string, properties map[string]any) {
	entry := models.ActivityLog{
		LogName:     logName,
		Description: message,
		CauserName:  actor.Name,
		CauserEmail: actor.Email,
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		RequestID:   meta.RequestID,
	}
	if actor.ID != 0 {
		id := actor.ID
		entry.CauserID = &id
	}

	if len(properties) > 0 {
		raw, err := json.Marshal(properties)
		if err != nil {
			log.Printf("warning: failed to marshal activity properties for %s: %v", logName, err)
		} else {
			entry.Properties = datatypes.JSON(raw)
		}
	}

	if err := tx.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to record activity %s: %v", logName, err)
	}
}
