package service

import (
	"math"

	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/model"
)

// ScoreSummary is the derived scoring state of a submission.
type ScoreSummary struct {
	TotalScore      float64
	PercentageScore float64
	// Passed is nil while any subjective answer is still pending manual
	// grading; callers must not surface a pending verdict as final.
	Passed *bool
}

// ScoreAggregatorService recomputes total, percentage and pass/fail from the
// current answer set. It is invoked at initial submission and after every
// manual regrade; derived fields are never incrementally patched.
type ScoreAggregatorService interface {
	Aggregate(exam *model.Exam, answers []model.Answer, hasPending bool) (ScoreSummary, error)
}

type scoreAggregatorService struct{}

func NewScoreAggregatorService() ScoreAggregatorService {
	return &scoreAggregatorService{}
}

func (s *scoreAggregatorService) Aggregate(exam *model.Exam, answers []model.Answer, hasPending bool) (ScoreSummary, error) {
	if exam.TotalPoints <= 0 {
		// Caught at exam-authoring time; hitting it here means the exam
		// record is corrupt.
		return ScoreSummary{}, apperr.Validation("exam %d has non-positive total points", exam.ID)
	}

	var total float64
	for _, a := range answers {
		total += a.PointsAwarded
	}

	summary := ScoreSummary{
		TotalScore:      total,
		PercentageScore: roundPercentage(total / exam.TotalPoints * 100),
	}
	if !hasPending {
		passed := total >= exam.PassingScore
		summary.Passed = &passed
	}
	return summary, nil
}

func roundPercentage(pct float64) float64 {
	return math.Round(pct*100) / 100
}
