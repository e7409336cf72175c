package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StudentExamService is the student-facing read side of the exam catalog.
// Correct-answer labels are redacted here; students never see them.
type StudentExamService interface {
	GetAllExams() ([]dto.ExamSummaryDTO, error)
	GetExamDetails(examID uint) (*dto.StudentExamDTO, error)
}

type studentExamService struct {
	examRepo repository.ExamRepository
}

func NewStudentExamService(examRepo repository.ExamRepository) StudentExamService {
	return &studentExamService{examRepo: examRepo}
}

func (s *studentExamService) GetAllExams() ([]dto.ExamSummaryDTO, error) {
	examsWithCount, err := s.examRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all exams with question count from repository")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	var dtos []dto.ExamSummaryDTO
	for _, ewc := range examsWithCount {
		dtos = append(dtos, dto.ExamSummaryDTO{
			ID:              ewc.Exam.ID,
			Title:           ewc.Exam.Title,
			Description:     ewc.Exam.Description,
			TotalPoints:     ewc.Exam.TotalPoints,
			PassingScore:    ewc.Exam.PassingScore,
			AllowedAttempts: ewc.Exam.AllowedAttempts,
			QuestionCount:   ewc.QuestionCount,
			CreatedAt:       ewc.Exam.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *studentExamService) GetExamDetails(examID uint) (*dto.StudentExamDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", examID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}

	var resp dto.StudentExamDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to copy exam model to student DTO")
		return nil, fmt.Errorf("error preparing exam details: %w", err)
	}
	// StudentQuestionDTO has no CorrectAnswer field, so copier drops the
	// answer key on the floor here rather than leaving redaction to callers.
	return &resp, nil
}
