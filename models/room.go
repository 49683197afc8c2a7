package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is the unit of inventory. Booked is a denormalized occupancy flag:
// it is set by the booking lifecycle at accept/reject time and is never
// recomputed from the bookings table, so it can drift from the authoritative
// overlap scan. Only the booking service writes it.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	PhotoURL    string `gorm:"column:photo_url;size:512" json:"photo_url"`

	// accommodation or conference_hall
	RoomType       string `gorm:"column:room_type;size:50;default:accommodation" json:"room_type"`
	RoomCategoryID *uint  `gorm:"column:room_category_id;index" json:"room_category_id,omitempty"`
	Status         string `gorm:"size:50" json:"status"`

	Price  float64 `json:"price"`
	Stars  int     `json:"stars"`
	Booked bool    `gorm:"default:false" json:"booked"`

	// Capacity is the combined guest total used by the combined capacity
	// policy; NumberOfAdults/NumberOfChildren are the independent limits.
	Capacity         int `gorm:"default:0" json:"capacity"`
	NumberOfAdults   int `gorm:"column:number_of_adults;default:1" json:"number_of_adults"`
	NumberOfChildren int `gorm:"column:number_of_children;default:0" json:"number_of_children"`

	CreatedBy *uint `gorm:"column:created_by" json:"created_by,omitempty"`
	UpdatedBy *uint `gorm:"column:updated_by" json:"updated_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomCategory *RoomCategory `gorm:"foreignKey:RoomCategoryID" json:"room_category,omitempty"`
	RoomFeatures []RoomFeature `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room_features,omitempty"`
}
