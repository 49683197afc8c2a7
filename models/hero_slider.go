package models

import (
	"time"

	"gorm.io/gorm"
)

type HeroSlider struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	PhotoURL    string `gorm:"column:photo_url;size:512" json:"photo_url"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
