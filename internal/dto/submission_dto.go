package dto

import "time"

// AnswerSubmitDTO is one answer within a submission. Only the question number
// and the chosen option / free text are trusted from the client; the question
// type is always re-derived from the exam definition.
type AnswerSubmitDTO struct {
	QuestionNumber int     `json:"question_number" binding:"required,min=1"`
	SelectedOption *string `json:"selected_option,omitempty"`
	TextAnswer     *string `json:"text_answer,omitempty"`
}

// SubmissionSubmitDTO is the request body for a student submitting an exam.
type SubmissionSubmitDTO struct {
	StudentID        uint              `json:"student_id" binding:"required"`
	StartedAt        *time.Time        `json:"started_at,omitempty"`
	TimeSpentMinutes int               `json:"time_spent_minutes" binding:"omitempty,min=0"`
	Answers          []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// AnswerResponseDTO is one graded (or pending) answer within a submission.
type AnswerResponseDTO struct {
	ID             uint    `json:"id"`
	QuestionNumber int     `json:"question_number"`
	Type           string  `json:"type"`
	SelectedOption *string `json:"selected_option,omitempty"`
	TextAnswer     *string `json:"text_answer,omitempty"`
	IsCorrect      *bool   `json:"is_correct,omitempty"`
	PointsAwarded  float64 `json:"points_awarded"`
	Feedback       *string `json:"feedback,omitempty"`
}

// SubmissionDetailDTO is the full view of one submission.
type SubmissionDetailDTO struct {
	ID               uint                `json:"id"`
	ExamID           uint                `json:"exam_id"`
	ExamTitle        string              `json:"exam_title,omitempty"`
	StudentID        uint                `json:"student_id"`
	StudentName      string              `json:"student_name"`
	StudentDisplayID string              `json:"student_display_id"`
	AttemptNumber    int                 `json:"attempt_number"`
	TotalScore       float64             `json:"total_score"`
	PercentageScore  float64             `json:"percentage_score"`
	Passed           *bool               `json:"passed,omitempty"`
	Status           string              `json:"status"`
	StartedAt        time.Time           `json:"started_at"`
	SubmittedAt      time.Time           `json:"submitted_at"`
	GradedAt         *time.Time          `json:"graded_at,omitempty"`
	TimeSpentMinutes int                 `json:"time_spent_minutes,omitempty"`
	Answers          []AnswerResponseDTO `json:"answers,omitempty"`
}

// SubmissionSummaryDTO is for listing submissions without their answers.
type SubmissionSummaryDTO struct {
	ID               uint       `json:"id"`
	ExamID           uint       `json:"exam_id"`
	StudentID        uint       `json:"student_id"`
	StudentName      string     `json:"student_name"`
	StudentDisplayID string     `json:"student_display_id"`
	AttemptNumber    int        `json:"attempt_number"`
	TotalScore       float64    `json:"total_score"`
	PercentageScore  float64    `json:"percentage_score"`
	Passed           *bool      `json:"passed,omitempty"`
	Status           string     `json:"status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	GradedAt         *time.Time `json:"graded_at,omitempty"`
}
