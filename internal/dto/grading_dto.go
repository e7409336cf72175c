package dto

// GradeEntryDTO is one teacher-assigned point award for a subjective answer.
type GradeEntryDTO struct {
	QuestionNumber int     `json:"question_number" binding:"required,min=1"`
	PointsAwarded  float64 `json:"points_awarded" binding:"min=0"`
	Feedback       *string `json:"feedback,omitempty"`
}

// GradeSubmissionDTO is the request body for manually grading a submission.
// All subjective answers are graded in one batched call.
type GradeSubmissionDTO struct {
	Grades []GradeEntryDTO `json:"grades" binding:"required,min=1,dive"`
}
