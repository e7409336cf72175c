package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminExamService interface {
	CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	GetExamDetails(examID uint) (*dto.ExamResponseDTO, error)
}

type adminExamService struct {
	examRepo repository.ExamRepository
}

func NewAdminExamService(examRepo repository.ExamRepository) AdminExamService {
	return &adminExamService{examRepo: examRepo}
}

// CreateExam validates the full question list and persists the exam.
// TotalPoints is derived server-side as the sum of question points and must
// be positive; the passing score may not exceed it.
func (s *adminExamService) CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	numberSeen := make(map[int]bool, len(req.Questions))
	questions := make([]model.Question, 0, len(req.Questions))
	totalPoints := 0.0

	for _, qDto := range req.Questions {
		if numberSeen[qDto.QuestionNumber] {
			return nil, apperr.Validation("duplicate question number %d", qDto.QuestionNumber)
		}
		numberSeen[qDto.QuestionNumber] = true
		if qDto.Points < 0 {
			return nil, apperr.Validation("question %d has negative points", qDto.QuestionNumber)
		}

		switch model.QuestionType(qDto.Type) {
		case model.QuestionTypeObjective:
			if !hasAllOptions(qDto) {
				return nil, apperr.Validation("objective question %d requires four non-empty options", qDto.QuestionNumber)
			}
			if qDto.CorrectAnswer == nil || !model.IsValidOptionLabel(*qDto.CorrectAnswer) {
				return nil, apperr.Validation("objective question %d requires a correct answer label (A-D)", qDto.QuestionNumber)
			}
		case model.QuestionTypeSubjective:
			if qDto.OptionA != nil || qDto.OptionB != nil || qDto.OptionC != nil || qDto.OptionD != nil || qDto.CorrectAnswer != nil {
				return nil, apperr.Validation("subjective question %d must not carry options or a correct answer", qDto.QuestionNumber)
			}
		default:
			return nil, apperr.Validation("question %d has unsupported type %q", qDto.QuestionNumber, qDto.Type)
		}

		var question model.Question
		copier.Copy(&question, &qDto)
		question.Type = model.QuestionType(qDto.Type)
		questions = append(questions, question)
		totalPoints += qDto.Points
	}

	if totalPoints <= 0 {
		return nil, apperr.Validation("exam total points must be positive, got %.2f", totalPoints)
	}
	if req.PassingScore > totalPoints {
		return nil, apperr.Validation("passing score %.2f exceeds total points %.2f", req.PassingScore, totalPoints)
	}

	allowedAttempts := req.AllowedAttempts
	if allowedAttempts == 0 {
		allowedAttempts = 1
	}

	exam := model.Exam{
		Title:           req.Title,
		Description:     req.Description,
		Questions:       questions,
		TotalPoints:     totalPoints,
		PassingScore:    req.PassingScore,
		AllowedAttempts: allowedAttempts,
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create exam in database")
		return nil, fmt.Errorf("database error creating exam: %w", err)
	}

	created, err := s.examRepo.FindByIDWithQuestions(exam.ID)
	if err != nil {
		log.Error().Err(err).Uint("examID", exam.ID).Msg("Failed to reload newly created exam for response")
		var fallback dto.ExamResponseDTO
		copier.Copy(&fallback, &exam)
		return &fallback, nil
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}

func (s *adminExamService) GetExamDetails(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", examID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}
	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}

func hasAllOptions(q dto.QuestionCreateDTO) bool {
	for _, opt := range []*string{q.OptionA, q.OptionB, q.OptionC, q.OptionD} {
		if opt == nil || *opt == "" {
			return false
		}
	}
	return true
}
