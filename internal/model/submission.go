package model

import (
	"time"

	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	// SubmissionStatusSubmitted means objective answers are scored but at
	// least one subjective answer is still awaiting manual grading.
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	// SubmissionStatusGraded is terminal.
	SubmissionStatusGraded SubmissionStatus = "graded"
)

type Submission struct {
	ID     uint `gorm:"primarykey" json:"id"`
	ExamID uint `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_exam_student_attempt"`
	Exam   Exam `json:"exam,omitempty" gorm:"foreignKey:ExamID"`

	StudentID uint `json:"student_id" gorm:"not null;index;uniqueIndex:idx_exam_student_attempt"`
	// Denormalized from the student directory at submit time.
	StudentName      string `json:"student_name" gorm:"not null"`
	StudentDisplayID string `json:"student_display_id" gorm:"not null"`

	// AttemptNumber is 1-based and immutable. The unique index on
	// (exam_id, student_id, attempt_number) turns the attempt-cap race into a
	// hard constraint violation instead of a silent overcount.
	AttemptNumber int `json:"attempt_number" gorm:"not null;uniqueIndex:idx_exam_student_attempt"`

	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Derived fields, recomputed from the answer set on every mutation.
	TotalScore      float64 `json:"total_score"`
	PercentageScore float64 `json:"percentage_score"`
	// Passed is nil while any subjective answer is pending manual grading.
	Passed *bool `json:"passed,omitempty"`

	Status           SubmissionStatus `json:"status" gorm:"not null;default:'submitted'"`
	StartedAt        time.Time        `json:"started_at"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	GradedAt         *time.Time       `json:"graded_at,omitempty"`
	TimeSpentMinutes int              `json:"time_spent_minutes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
