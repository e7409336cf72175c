package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeObjective  QuestionType = "objective"
	QuestionTypeSubjective QuestionType = "subjective"
)

// OptionLabels are the valid choice labels for objective questions.
var OptionLabels = []string{"A", "B", "C", "D"}

type Question struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	ExamID         uint         `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_exam_question_number"`
	QuestionNumber int          `json:"question_number" gorm:"not null;uniqueIndex:idx_exam_question_number"` // 1-based position within the exam
	Text           string       `json:"text" gorm:"type:text;not null"`
	Type           QuestionType `json:"type" gorm:"not null"`
	Points         float64      `json:"points" gorm:"not null"`

	// Objective questions only.
	OptionA       *string `json:"option_a,omitempty"`
	OptionB       *string `json:"option_b,omitempty"`
	OptionC       *string `json:"option_c,omitempty"`
	OptionD       *string `json:"option_d,omitempty"`
	CorrectAnswer *string `json:"correct_answer,omitempty"` // Option label, one of "A".."D"

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsValidOptionLabel reports whether label names one of the four choices.
func IsValidOptionLabel(label string) bool {
	for _, l := range OptionLabels {
		if l == label {
			return true
		}
	}
	return false
}
