package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService is the manual grading gate: teachers batch-grade the
// subjective answers of one submission, the score is re-aggregated and the
// submission transitions to its terminal "graded" state.
type GradingService interface {
	GradeSubmission(submissionID uint, req dto.GradeSubmissionDTO) (*dto.SubmissionDetailDTO, error)
	ListPendingSubmissions(examID uint) ([]dto.SubmissionSummaryDTO, error)
}

type gradingService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
	aggregator     ScoreAggregatorService
	db             *gorm.DB
}

func NewGradingService(
	examRepo repository.ExamRepository,
	submissionRepo repository.SubmissionRepository,
	aggregator ScoreAggregatorService,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		examRepo:       examRepo,
		submissionRepo: submissionRepo,
		aggregator:     aggregator,
		db:             db,
	}
}

// GradeSubmission validates every grade entry before mutating anything, then
// applies the point awards, re-aggregates and persists. Re-supplying the same
// grades yields the same final state; a second call with different values
// fails because "graded" is terminal.
func (s *gradingService) GradeSubmission(submissionID uint, req dto.GradeSubmissionDTO) (*dto.SubmissionDetailDTO, error) {
	submission, err := s.submissionRepo.FindByIDWithAnswers(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission", submissionID)
		}
		return nil, fmt.Errorf("loading submission %d: %w", submissionID, err)
	}
	if submission.Status == model.SubmissionStatusGraded {
		return nil, apperr.Validation("submission %d is already graded", submissionID)
	}

	exam, err := s.examRepo.FindByIDWithQuestions(submission.ExamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", submission.ExamID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", submission.ExamID, err)
	}

	questionMap := make(map[int]model.Question, len(exam.Questions))
	for _, q := range exam.Questions {
		questionMap[q.QuestionNumber] = q
	}
	answerIdx := make(map[int]int, len(submission.Answers))
	for i, a := range submission.Answers {
		answerIdx[a.QuestionNumber] = i
	}

	// Validate the whole batch before touching any answer.
	gradeByQuestion := make(map[int]dto.GradeEntryDTO, len(req.Grades))
	for _, grade := range req.Grades {
		question, exists := questionMap[grade.QuestionNumber]
		if !exists {
			return nil, apperr.UnknownQuestion(grade.QuestionNumber)
		}
		if _, dup := gradeByQuestion[grade.QuestionNumber]; dup {
			return nil, apperr.Validation("duplicate grade for question %d", grade.QuestionNumber)
		}
		if question.Type != model.QuestionTypeSubjective {
			return nil, apperr.TypeMismatch(grade.QuestionNumber)
		}
		if grade.PointsAwarded < 0 || grade.PointsAwarded > question.Points {
			return nil, apperr.PointsOutOfRange(grade.QuestionNumber, grade.PointsAwarded, question.Points)
		}
		idx, answered := answerIdx[grade.QuestionNumber]
		if !answered || submission.Answers[idx].Type != model.QuestionTypeSubjective {
			return nil, apperr.NotFound("subjective answer for question", grade.QuestionNumber)
		}
		gradeByQuestion[grade.QuestionNumber] = grade
	}

	// All subjective answers are graded in one batched call; there is no
	// partially-graded intermediate state.
	for _, a := range submission.Answers {
		if a.Type != model.QuestionTypeSubjective {
			continue
		}
		if _, covered := gradeByQuestion[a.QuestionNumber]; !covered {
			return nil, apperr.Validation("grade for subjective question %d is missing", a.QuestionNumber)
		}
	}

	for questionNumber, grade := range gradeByQuestion {
		answer := &submission.Answers[answerIdx[questionNumber]]
		answer.PointsAwarded = grade.PointsAwarded
		answer.Feedback = grade.Feedback
	}

	summary, err := s.aggregator.Aggregate(exam, submission.Answers, false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	submission.TotalScore = summary.TotalScore
	submission.PercentageScore = summary.PercentageScore
	submission.Passed = summary.Passed
	submission.Status = model.SubmissionStatusGraded
	submission.GradedAt = &now

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range submission.Answers {
			if submission.Answers[i].Type != model.QuestionTypeSubjective {
				continue
			}
			if err := tx.Save(&submission.Answers[i]).Error; err != nil {
				return fmt.Errorf("updating answer for question %d: %w", submission.Answers[i].QuestionNumber, err)
			}
		}
		return tx.Model(&model.Submission{ID: submission.ID}).Updates(map[string]any{
			"total_score":      submission.TotalScore,
			"percentage_score": submission.PercentageScore,
			"passed":           submission.Passed,
			"status":           submission.Status,
			"graded_at":        submission.GradedAt,
		}).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GradeSubmission: failed to persist grades")
		return nil, fmt.Errorf("persisting grades for submission %d: %w", submissionID, err)
	}

	log.Info().
		Uint("submissionID", submissionID).
		Float64("totalScore", submission.TotalScore).
		Float64("percentageScore", submission.PercentageScore).
		Msg("Submission manually graded")

	detailed, err := s.submissionRepo.FindByIDWithAnswers(submissionID)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GradeSubmission: failed to reload submission for response")
		submission.Exam = *exam
		return toSubmissionDetailDTO(submission)
	}
	return toSubmissionDetailDTO(detailed)
}

func (s *gradingService) ListPendingSubmissions(examID uint) ([]dto.SubmissionSummaryDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", examID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}
	submissions, err := s.submissionRepo.FindPendingByExam(examID)
	if err != nil {
		return nil, fmt.Errorf("listing pending submissions for exam %d: %w", examID, err)
	}
	return toSubmissionSummaryDTOs(submissions), nil
}
