package service

import (
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
)

// GraderService scores a submitted answer set against the exam's question
// definitions. Objective answers are scored immediately; subjective answers
// are left pending for manual grading.
type GraderService interface {
	GradeAnswers(questions []model.Question, answers []dto.AnswerSubmitDTO) (graded []model.Answer, hasPending bool, err error)
}

type graderService struct{}

func NewGraderService() GraderService {
	return &graderService{}
}

// GradeAnswers enriches each answer with grading fields. Any answer naming a
// question that is not part of the exam aborts the whole submission; partial
// grading is not permitted.
func (s *graderService) GradeAnswers(questions []model.Question, answers []dto.AnswerSubmitDTO) ([]model.Answer, bool, error) {
	questionMap := make(map[int]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.QuestionNumber] = q
	}

	seen := make(map[int]bool, len(answers))
	graded := make([]model.Answer, 0, len(answers))
	hasPending := false

	for _, in := range answers {
		question, exists := questionMap[in.QuestionNumber]
		if !exists {
			return nil, false, apperr.UnknownQuestion(in.QuestionNumber)
		}
		if seen[in.QuestionNumber] {
			return nil, false, apperr.Validation("duplicate answer for question %d", in.QuestionNumber)
		}
		seen[in.QuestionNumber] = true

		// The question type always comes from the exam definition, never
		// from the caller: it decides which grading path runs.
		answer := model.Answer{
			QuestionNumber: question.QuestionNumber,
			Type:           question.Type,
		}

		switch question.Type {
		case model.QuestionTypeObjective:
			if in.SelectedOption == nil || !model.IsValidOptionLabel(*in.SelectedOption) {
				return nil, false, apperr.Validation("question %d requires a selected option (A-D)", in.QuestionNumber)
			}
			answer.SelectedOption = in.SelectedOption
			correct := question.CorrectAnswer != nil && *in.SelectedOption == *question.CorrectAnswer
			answer.IsCorrect = &correct
			if correct {
				answer.PointsAwarded = question.Points
			}
		case model.QuestionTypeSubjective:
			if in.TextAnswer == nil || *in.TextAnswer == "" {
				return nil, false, apperr.Validation("question %d requires a text answer", in.QuestionNumber)
			}
			answer.TextAnswer = in.TextAnswer
			// Zero points until manually graded; IsCorrect stays nil.
			hasPending = true
		default:
			return nil, false, apperr.Validation("question %d has unsupported type %q", in.QuestionNumber, question.Type)
		}

		graded = append(graded, answer)
	}

	return graded, hasPending, nil
}
