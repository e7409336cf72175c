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

// SubmissionService owns the submit side of the grading engine: attempt-cap
// enforcement, auto-grading, initial aggregation and persistence.
type SubmissionService interface {
	Submit(examID uint, req dto.SubmissionSubmitDTO) (*dto.SubmissionDetailDTO, error)
	GetSubmission(submissionID uint) (*dto.SubmissionDetailDTO, error)
	ListSubmissions(examID uint) ([]dto.SubmissionSummaryDTO, error)
	ListStudentSubmissions(examID, studentID uint) ([]dto.SubmissionSummaryDTO, error)
}

type submissionService struct {
	examRepo       repository.ExamRepository
	studentRepo    repository.StudentRepository
	submissionRepo repository.SubmissionRepository
	grader         GraderService
	aggregator     ScoreAggregatorService
	db             *gorm.DB
}

func NewSubmissionService(
	examRepo repository.ExamRepository,
	studentRepo repository.StudentRepository,
	submissionRepo repository.SubmissionRepository,
	grader GraderService,
	aggregator ScoreAggregatorService,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		examRepo:       examRepo,
		studentRepo:    studentRepo,
		submissionRepo: submissionRepo,
		grader:         grader,
		aggregator:     aggregator,
		db:             db,
	}
}

// Submit validates the attempt, auto-grades objective answers, aggregates the
// initial score and persists the submission. A submission with no subjective
// answers is final immediately and lands in status "graded".
func (s *submissionService) Submit(examID uint, req dto.SubmissionSubmitDTO) (*dto.SubmissionDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", examID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}
	if len(exam.Questions) == 0 {
		return nil, apperr.Validation("exam %d has no questions, submission is not possible", examID)
	}

	student, err := s.studentRepo.FindByID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("student", req.StudentID)
		}
		return nil, fmt.Errorf("loading student %d: %w", req.StudentID, err)
	}

	priorAttempts, err := s.submissionRepo.CountByExamAndStudent(examID, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("counting prior attempts: %w", err)
	}
	if priorAttempts >= int64(exam.AllowedAttempts) {
		return nil, apperr.AttemptLimitExceeded(examID, req.StudentID, exam.AllowedAttempts)
	}

	answers, hasPending, err := s.grader.GradeAnswers(exam.Questions, req.Answers)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregator.Aggregate(exam, answers, hasPending)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	submission := model.Submission{
		ExamID:           examID,
		StudentID:        student.ID,
		StudentName:      student.Name,
		StudentDisplayID: student.DisplayID,
		AttemptNumber:    int(priorAttempts) + 1,
		Answers:          answers,
		TotalScore:       summary.TotalScore,
		PercentageScore:  summary.PercentageScore,
		Passed:           summary.Passed,
		Status:           model.SubmissionStatusSubmitted,
		StartedAt:        now,
		SubmittedAt:      now,
		TimeSpentMinutes: req.TimeSpentMinutes,
	}
	if req.StartedAt != nil {
		submission.StartedAt = *req.StartedAt
	}
	if !hasPending {
		submission.Status = model.SubmissionStatusGraded
		submission.GradedAt = &now
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated answers alongside the submission.
		return tx.Create(&submission).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent submit claimed the same attempt number. The
			// unique index on (exam, student, attempt) makes the check-
			// then-act race a hard failure instead of an overcount.
			log.Warn().Uint("examID", examID).Uint("studentID", req.StudentID).
				Int("attemptNumber", submission.AttemptNumber).
				Msg("Submit: concurrent attempt detected via unique constraint")
			return nil, apperr.AttemptLimitExceeded(examID, req.StudentID, exam.AllowedAttempts)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Submit: failed to persist submission")
		return nil, fmt.Errorf("persisting submission: %w", err)
	}

	log.Info().
		Uint("submissionID", submission.ID).
		Uint("examID", examID).
		Uint("studentID", student.ID).
		Int("attemptNumber", submission.AttemptNumber).
		Str("status", string(submission.Status)).
		Float64("totalScore", submission.TotalScore).
		Msg("Submission created")

	detailed, err := s.submissionRepo.FindByIDWithAnswers(submission.ID)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("Submit: failed to reload submission for response")
		submission.Exam = *exam
		return toSubmissionDetailDTO(&submission)
	}
	return toSubmissionDetailDTO(detailed)
}

func (s *submissionService) GetSubmission(submissionID uint) (*dto.SubmissionDetailDTO, error) {
	submission, err := s.submissionRepo.FindByIDWithAnswers(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission", submissionID)
		}
		return nil, fmt.Errorf("loading submission %d: %w", submissionID, err)
	}
	return toSubmissionDetailDTO(submission)
}

func (s *submissionService) ListSubmissions(examID uint) ([]dto.SubmissionSummaryDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam", examID)
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}
	submissions, err := s.submissionRepo.FindAllByExam(examID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions for exam %d: %w", examID, err)
	}
	return toSubmissionSummaryDTOs(submissions), nil
}

func (s *submissionService) ListStudentSubmissions(examID, studentID uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindAllByExamAndStudent(examID, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions for exam %d, student %d: %w", examID, studentID, err)
	}
	return toSubmissionSummaryDTOs(submissions), nil
}
