package models

import "time"

// RoomFeature is a single amenity line attached to a room.
type RoomFeature struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	RoomID  uint   `gorm:"column:room_id;index;not null" json:"room_id"`
	Feature string `gorm:"size:255" json:"feature"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
