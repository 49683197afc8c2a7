package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	PhotoURL    string `gorm:"column:photo_url;size:512" json:"photo_url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
