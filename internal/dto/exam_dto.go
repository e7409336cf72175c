package dto

import "time"

// QuestionCreateDTO is used within ExamCreateDTO for admin exam authoring.
type QuestionCreateDTO struct {
	QuestionNumber int     `json:"question_number" binding:"required,min=1"`
	Text           string  `json:"text" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=objective subjective"`
	Points         float64 `json:"points" binding:"min=0"`

	// Objective questions only.
	OptionA       *string `json:"option_a"`
	OptionB       *string `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	CorrectAnswer *string `json:"correct_answer"` // "A".."D"
}

// ExamCreateDTO is for admin to create a new exam with all its questions.
// TotalPoints is computed server-side from the question list.
type ExamCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	PassingScore    float64             `json:"passing_score" binding:"min=0"`
	AllowedAttempts int                 `json:"allowed_attempts" binding:"omitempty,min=1"`
	DurationMinutes int                 `json:"duration_minutes" binding:"omitempty,min=1"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuestionResponseDTO carries the full question definition, correct answer
// included. Admin/teacher facing only.
type QuestionResponseDTO struct {
	ID             uint    `json:"id"`
	ExamID         uint    `json:"exam_id"`
	QuestionNumber int     `json:"question_number"`
	Text           string  `json:"text"`
	Type           string  `json:"type"`
	Points         float64 `json:"points"`
	OptionA        *string `json:"option_a,omitempty"`
	OptionB        *string `json:"option_b,omitempty"`
	OptionC        *string `json:"option_c,omitempty"`
	OptionD        *string `json:"option_d,omitempty"`
	CorrectAnswer  *string `json:"correct_answer,omitempty"`
}

// StudentQuestionDTO is the student-facing question view: same shape minus
// the correct answer label, which is never transmitted to students.
type StudentQuestionDTO struct {
	ID             uint    `json:"id"`
	ExamID         uint    `json:"exam_id"`
	QuestionNumber int     `json:"question_number"`
	Text           string  `json:"text"`
	Type           string  `json:"type"`
	Points         float64 `json:"points"`
	OptionA        *string `json:"option_a,omitempty"`
	OptionB        *string `json:"option_b,omitempty"`
	OptionC        *string `json:"option_c,omitempty"`
	OptionD        *string `json:"option_d,omitempty"`
}

// ExamResponseDTO is the admin-facing exam detail.
type ExamResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	TotalPoints     float64               `json:"total_points"`
	PassingScore    float64               `json:"passing_score"`
	AllowedAttempts int                   `json:"allowed_attempts"`
	DurationMinutes int                   `json:"duration_minutes,omitempty"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// StudentExamDTO is the student-facing exam detail with redacted questions.
type StudentExamDTO struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	TotalPoints     float64              `json:"total_points"`
	PassingScore    float64              `json:"passing_score"`
	AllowedAttempts int                  `json:"allowed_attempts"`
	DurationMinutes int                  `json:"duration_minutes,omitempty"`
	Questions       []StudentQuestionDTO `json:"questions,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ExamSummaryDTO is used for exam listing pages.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	TotalPoints     float64   `json:"total_points"`
	PassingScore    float64   `json:"passing_score"`
	AllowedAttempts int       `json:"allowed_attempts"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}
