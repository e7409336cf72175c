// Package apperr defines the engine's error taxonomy. All errors here are
// deterministic given the same input, so none of them are retried by the
// engine itself.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed input shape, a caller bug.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent exam, student, submission or question,
// either a stale reference or tampering.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Resource, e.ID)
}

func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnknownQuestion marks a submitted or graded answer referencing a question
// number that is not part of the exam. It aborts the whole operation;
// partial grading is not permitted.
func UnknownQuestion(questionNumber int) error {
	return &NotFoundError{Resource: "question", ID: questionNumber}
}

// LimitExceededError reports an attempt past the exam's attempt cap.
type LimitExceededError struct {
	ExamID          uint
	StudentID       uint
	AllowedAttempts int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("attempt limit of %d exceeded for exam %d by student %d",
		e.AllowedAttempts, e.ExamID, e.StudentID)
}

func AttemptLimitExceeded(examID, studentID uint, allowed int) error {
	return &LimitExceededError{ExamID: examID, StudentID: studentID, AllowedAttempts: allowed}
}

// RangeError reports a point award outside [0, question.Points].
type RangeError struct {
	QuestionNumber int
	Points         float64
	Max            float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("points %.2f for question %d out of range [0, %.2f]",
		e.Points, e.QuestionNumber, e.Max)
}

func PointsOutOfRange(questionNumber int, points, max float64) error {
	return &RangeError{QuestionNumber: questionNumber, Points: points, Max: max}
}

// TypeMismatchError reports a manual grade aimed at a non-subjective answer.
// Rejecting beats silently discarding teacher input.
type TypeMismatchError struct {
	QuestionNumber int
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("question %d is not subjective and cannot be manually graded", e.QuestionNumber)
}

func TypeMismatch(questionNumber int) error {
	return &TypeMismatchError{QuestionNumber: questionNumber}
}

// HTTPStatus maps an engine error to the status code controllers respond with.
func HTTPStatus(err error) int {
	var (
		notFound *NotFoundError
		valErr   *ValidationError
		limErr   *LimitExceededError
		rngErr   *RangeError
		typErr   *TypeMismatchError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &limErr):
		return http.StatusConflict
	case errors.As(err, &valErr), errors.As(err, &rngErr), errors.As(err, &typErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
