package service

import (
	"testing"

	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitMixed creates the fixture most grading tests use: one objective
// question (5 pts, answered correctly) and one subjective question (5 pts).
func submitMixed(t *testing.T, env *testEnv) (examID, submissionID uint) {
	t.Helper()

	exam := env.seedExam(t, 6, 1,
		objectiveQuestion(1, 5, "A"),
		subjectiveQuestion(2, 5),
	)
	student := env.seedStudent(t)

	result, err := env.submissions.Submit(exam.ID, dto.SubmissionSubmitDTO{
		StudentID: student.ID,
		Answers: []dto.AnswerSubmitDTO{
			{QuestionNumber: 1, SelectedOption: strPtr("A")},
			{QuestionNumber: 2, TextAnswer: strPtr("A thorough written answer.")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, string(model.SubmissionStatusSubmitted), result.Status)
	return exam.ID, result.ID
}

func TestGradeSubmission_CompletesMixedSubmission(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	result, err := env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{
			{QuestionNumber: 2, PointsAwarded: 5, Feedback: strPtr("Well argued.")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.TotalScore)
	assert.Equal(t, 100.0, result.PercentageScore)
	require.NotNil(t, result.Passed)
	assert.True(t, *result.Passed)
	assert.Equal(t, string(model.SubmissionStatusGraded), result.Status)
	require.NotNil(t, result.GradedAt)

	require.Len(t, result.Answers, 2)
	subjective := result.Answers[1]
	assert.Equal(t, 5.0, subjective.PointsAwarded)
	require.NotNil(t, subjective.Feedback)
	assert.Equal(t, "Well argued.", *subjective.Feedback)
	assert.Nil(t, subjective.IsCorrect)
}

func TestGradeSubmission_PointsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	_, err := env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 2, PointsAwarded: 7}},
	})
	var rngErr *apperr.RangeError
	require.ErrorAs(t, err, &rngErr)
	assert.Equal(t, 2, rngErr.QuestionNumber)
	assert.Equal(t, 5.0, rngErr.Max)

	// Submission is untouched by the failed call.
	unchanged, getErr := env.submissions.GetSubmission(submissionID)
	require.NoError(t, getErr)
	assert.Equal(t, string(model.SubmissionStatusSubmitted), unchanged.Status)
	assert.Equal(t, 5.0, unchanged.TotalScore)
	assert.Nil(t, unchanged.Passed)
}

func TestGradeSubmission_UnknownQuestion(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	_, err := env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 42, PointsAwarded: 3}},
	})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "question", notFound.Resource)
}

func TestGradeSubmission_TypeMismatchRejected(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	// Question 1 is objective; grading it manually must not silently
	// discard the teacher's input.
	_, err := env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{
			{QuestionNumber: 1, PointsAwarded: 5},
			{QuestionNumber: 2, PointsAwarded: 5},
		},
	})
	var typErr *apperr.TypeMismatchError
	require.ErrorAs(t, err, &typErr)
	assert.Equal(t, 1, typErr.QuestionNumber)
}

func TestGradeSubmission_IncompleteBatchRejected(t *testing.T) {
	env := newTestEnv(t)
	exam := env.seedExam(t, 6, 1,
		subjectiveQuestion(1, 5),
		subjectiveQuestion(2, 5),
	)
	student := env.seedStudent(t)
	result, err := env.submissions.Submit(exam.ID, dto.SubmissionSubmitDTO{
		StudentID: student.ID,
		Answers: []dto.AnswerSubmitDTO{
			{QuestionNumber: 1, TextAnswer: strPtr("First essay.")},
			{QuestionNumber: 2, TextAnswer: strPtr("Second essay.")},
		},
	})
	require.NoError(t, err)

	// All subjective answers are graded in one batched call; covering only
	// one of two leaves no legal intermediate state.
	_, err = env.grading.GradeSubmission(result.ID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 1, PointsAwarded: 4}},
	})
	var valErr *apperr.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestGradeSubmission_GradedIsTerminal(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	grades := dto.GradeSubmissionDTO{Grades: []dto.GradeEntryDTO{{QuestionNumber: 2, PointsAwarded: 3}}}
	_, err := env.grading.GradeSubmission(submissionID, grades)
	require.NoError(t, err)

	_, err = env.grading.GradeSubmission(submissionID, grades)
	var valErr *apperr.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestGradeSubmission_ZeroPointsIsValidGrade(t *testing.T) {
	env := newTestEnv(t)
	_, submissionID := submitMixed(t, env)

	result, err := env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 2, PointsAwarded: 0, Feedback: strPtr("Off topic.")}},
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.TotalScore)
	assert.Equal(t, 50.0, result.PercentageScore)
	require.NotNil(t, result.Passed)
	assert.False(t, *result.Passed, "5 points is below the passing score of 6")
	assert.Equal(t, string(model.SubmissionStatusGraded), result.Status)
}

func TestGradeSubmission_SubmissionNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.grading.GradeSubmission(999, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 1, PointsAwarded: 1}},
	})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "submission", notFound.Resource)
}

func TestListPendingSubmissions(t *testing.T) {
	env := newTestEnv(t)
	examID, submissionID := submitMixed(t, env)

	pending, err := env.grading.ListPendingSubmissions(examID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, submissionID, pending[0].ID)

	_, err = env.grading.GradeSubmission(submissionID, dto.GradeSubmissionDTO{
		Grades: []dto.GradeEntryDTO{{QuestionNumber: 2, PointsAwarded: 5}},
	})
	require.NoError(t, err)

	pending, err = env.grading.ListPendingSubmissions(examID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
