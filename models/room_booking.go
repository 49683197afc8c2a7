package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses under the tri-state status model. Bookings are created
// as new and transitioned by an admin to accepted or rejected. Under the
// statusless model the column is ignored and existence implies occupancy.
const (
	BookingStatusNew      = "new"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
)

// RoomBooking reserves a room for [check_in, check_out). The check-out day
// is excluded from occupancy so back-to-back turnover on the same day does
// not conflict.
type RoomBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID   uint      `gorm:"column:room_id;index;not null" json:"room_id"`
	CheckIn  time.Time `gorm:"column:check_in;index" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`

	Status string `gorm:"size:50;default:new;index" json:"status"`

	NumberOfAdults   int    `gorm:"column:number_of_adults;default:1" json:"number_of_adults"`
	NumberOfChildren int    `gorm:"column:number_of_children;default:0" json:"number_of_children"`
	Description      string `gorm:"type:text" json:"description"`

	CreatedBy *uint `gorm:"column:created_by;index" json:"created_by,omitempty"`
	UpdatedBy *uint `gorm:"column:updated_by" json:"updated_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room          Room  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	CreatedByUser *User `gorm:"foreignKey:CreatedBy" json:"createdBy,omitempty"`
	UpdatedByUser *User `gorm:"foreignKey:UpdatedBy" json:"updatedBy,omitempty"`
}

// IsActive reports whether the booking counts for overlap purposes under
// the tri-state model (rejected bookings never conflict).
func (b *RoomBooking) IsActive() bool {
	return b.Status != BookingStatusRejected
}
