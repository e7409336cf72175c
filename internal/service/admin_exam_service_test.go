package service

import (
	"testing"

	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectiveCreateDTO(number int, points float64, correct string) dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{
		QuestionNumber: number,
		Text:           "Pick the right option",
		Type:           "objective",
		Points:         points,
		OptionA:        strPtr("first"),
		OptionB:        strPtr("second"),
		OptionC:        strPtr("third"),
		OptionD:        strPtr("fourth"),
		CorrectAnswer:  strPtr(correct),
	}
}

func TestCreateExam_ComputesTotalPoints(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAdminExamService(env.examRepo)

	resp, err := svc.CreateExam(dto.ExamCreateDTO{
		Title:        "Midterm Exam - Mathematics",
		PassingScore: 6,
		Questions: []dto.QuestionCreateDTO{
			objectiveCreateDTO(1, 5, "A"),
			{QuestionNumber: 2, Text: "Explain your reasoning", Type: "subjective", Points: 5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, resp.TotalPoints)
	assert.Equal(t, 1, resp.AllowedAttempts, "attempt cap defaults to 1")
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "objective", resp.Questions[0].Type)
	assert.Equal(t, "subjective", resp.Questions[1].Type)
}

func TestCreateExam_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAdminExamService(env.examRepo)

	subjective := dto.QuestionCreateDTO{QuestionNumber: 2, Text: "Essay", Type: "subjective", Points: 5}

	tests := []struct {
		name string
		req  dto.ExamCreateDTO
	}{
		{
			name: "duplicate question numbers",
			req: dto.ExamCreateDTO{Title: "t1", PassingScore: 1, Questions: []dto.QuestionCreateDTO{
				objectiveCreateDTO(1, 5, "A"),
				objectiveCreateDTO(1, 5, "B"),
			}},
		},
		{
			name: "objective question missing options",
			req: dto.ExamCreateDTO{Title: "t2", PassingScore: 1, Questions: []dto.QuestionCreateDTO{
				{QuestionNumber: 1, Text: "q", Type: "objective", Points: 5, CorrectAnswer: strPtr("A")},
			}},
		},
		{
			name: "objective question with invalid correct label",
			req: dto.ExamCreateDTO{Title: "t3", PassingScore: 1, Questions: []dto.QuestionCreateDTO{
				objectiveCreateDTO(1, 5, "E"),
			}},
		},
		{
			name: "subjective question carrying options",
			req: dto.ExamCreateDTO{Title: "t4", PassingScore: 1, Questions: []dto.QuestionCreateDTO{
				{QuestionNumber: 1, Text: "q", Type: "subjective", Points: 5, OptionA: strPtr("stray")},
			}},
		},
		{
			name: "passing score above total points",
			req: dto.ExamCreateDTO{Title: "t5", PassingScore: 11, Questions: []dto.QuestionCreateDTO{
				objectiveCreateDTO(1, 5, "A"), subjective,
			}},
		},
		{
			name: "zero total points",
			req: dto.ExamCreateDTO{Title: "t6", PassingScore: 0, Questions: []dto.QuestionCreateDTO{
				{QuestionNumber: 1, Text: "q", Type: "subjective", Points: 0},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateExam(tc.req)
			var valErr *apperr.ValidationError
			require.ErrorAs(t, err, &valErr)
		})
	}
}

func TestStudentExamDetails_RedactsCorrectAnswers(t *testing.T) {
	env := newTestEnv(t)
	adminSvc := NewAdminExamService(env.examRepo)
	studentSvc := NewStudentExamService(env.examRepo)

	created, err := adminSvc.CreateExam(dto.ExamCreateDTO{
		Title:        "Final Exam - Physics",
		PassingScore: 3,
		Questions:    []dto.QuestionCreateDTO{objectiveCreateDTO(1, 5, "C")},
	})
	require.NoError(t, err)

	adminView, err := adminSvc.GetExamDetails(created.ID)
	require.NoError(t, err)
	require.NotNil(t, adminView.Questions[0].CorrectAnswer)

	studentView, err := studentSvc.GetExamDetails(created.ID)
	require.NoError(t, err)
	require.Len(t, studentView.Questions, 1)
	assert.NotEmpty(t, studentView.Questions[0].OptionA)
}
