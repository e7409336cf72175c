package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID           uint `gorm:"primarykey" json:"id"`
	SubmissionID uint `json:"submission_id" gorm:"not null;index"`

	QuestionNumber int `json:"question_number" gorm:"not null"`
	// Type is copied from the exam's question definition at grading time,
	// never taken from client input.
	Type QuestionType `json:"type" gorm:"not null"`

	SelectedOption *string `json:"selected_option,omitempty"` // objective
	TextAnswer     *string `json:"text_answer,omitempty"`     // subjective

	// IsCorrect is nil for subjective answers; correctness is not a binary
	// concept there.
	IsCorrect     *bool   `json:"is_correct,omitempty"`
	PointsAwarded float64 `json:"points_awarded"`
	Feedback      *string `json:"feedback,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
