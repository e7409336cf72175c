package service

import (
	"fmt"
	"testing"

	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the same schema
// and error translation the production Postgres connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.Student{},
		&model.Submission{},
		&model.Answer{},
	))
	return db
}

type testEnv struct {
	db             *gorm.DB
	examRepo       repository.ExamRepository
	studentRepo    repository.StudentRepository
	submissionRepo repository.SubmissionRepository
	submissions    SubmissionService
	grading        GradingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	examRepo := repository.NewExamRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	grader := NewGraderService()
	aggregator := NewScoreAggregatorService()

	return &testEnv{
		db:             db,
		examRepo:       examRepo,
		studentRepo:    studentRepo,
		submissionRepo: submissionRepo,
		submissions:    NewSubmissionService(examRepo, studentRepo, submissionRepo, grader, aggregator, db),
		grading:        NewGradingService(examRepo, submissionRepo, aggregator, db),
	}
}

func strPtr(s string) *string { return &s }

func objectiveQuestion(number int, points float64, correct string) model.Question {
	return model.Question{
		QuestionNumber: number,
		Text:           fmt.Sprintf("Objective question %d", number),
		Type:           model.QuestionTypeObjective,
		Points:         points,
		OptionA:        strPtr("first"),
		OptionB:        strPtr("second"),
		OptionC:        strPtr("third"),
		OptionD:        strPtr("fourth"),
		CorrectAnswer:  strPtr(correct),
	}
}

func subjectiveQuestion(number int, points float64) model.Question {
	return model.Question{
		QuestionNumber: number,
		Text:           fmt.Sprintf("Subjective question %d", number),
		Type:           model.QuestionTypeSubjective,
		Points:         points,
	}
}

// seedExam stores an exam whose total points are derived from its questions.
func (e *testEnv) seedExam(t *testing.T, passingScore float64, allowedAttempts int, questions ...model.Question) *model.Exam {
	t.Helper()

	total := 0.0
	for _, q := range questions {
		total += q.Points
	}
	exam := &model.Exam{
		Title:           fmt.Sprintf("%s exam", t.Name()),
		Questions:       questions,
		TotalPoints:     total,
		PassingScore:    passingScore,
		AllowedAttempts: allowedAttempts,
	}
	require.NoError(t, e.examRepo.Create(exam))
	return exam
}

func (e *testEnv) seedStudent(t *testing.T) *model.Student {
	t.Helper()

	student := &model.Student{Name: "Jordan Mukasa", DisplayID: fmt.Sprintf("S-%s", t.Name())}
	require.NoError(t, e.studentRepo.Create(student))
	return student
}
