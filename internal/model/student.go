package model

import (
	"time"

	"gorm.io/gorm"
)

// Student is the directory record denormalized into submissions.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	DisplayID string         `json:"display_id" gorm:"not null;uniqueIndex"` // Institutional student number, e.g. "S-2026-0042"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
