package repository

import (
	"github.com/kennywonda/EMS-sub000/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	Update(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindByIDWithAnswers(id uint) (*model.Submission, error)
	FindAllByExam(examID uint) ([]model.Submission, error)
	FindAllByExamAndStudent(examID, studentID uint) ([]model.Submission, error)
	FindPendingByExam(examID uint) ([]model.Submission, error)
	// CountByExamAndStudent is the attempt ledger query: prior submissions
	// for one (exam, student) pair.
	CountByExamAndStudent(examID, studentID uint) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	// GORM creates the associated answers when submission.Answers is populated.
	return r.db.Create(submission).Error
}

func (r *submissionRepository) Update(submission *model.Submission) error {
	return r.db.Save(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.First(&submission, id).Error
	return &submission, err
}

func (r *submissionRepository) FindByIDWithAnswers(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.
		Preload("Exam").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		First(&submission, id).Error
	return &submission, err
}

func (r *submissionRepository) FindAllByExam(examID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		Where("exam_id = ?", examID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindAllByExamAndStudent(examID, studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Order("attempt_number ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindPendingByExam(examID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		Where("exam_id = ? AND status = ?", examID, model.SubmissionStatusSubmitted).
		Order("submitted_at ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) CountByExamAndStudent(examID, studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Count(&count).Error
	return count, err
}
