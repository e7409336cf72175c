package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null;uniqueIndex"` // "Midterm Exam - Mathematics"
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:ExamID"`

	// TotalPoints is the sum of all question point values, fixed at
	// authoring time. PassingScore is an absolute point threshold and never
	// exceeds TotalPoints.
	TotalPoints     float64 `json:"total_points" gorm:"not null"`
	PassingScore    float64 `json:"passing_score" gorm:"not null"`
	AllowedAttempts int     `json:"allowed_attempts" gorm:"not null;default:1"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
