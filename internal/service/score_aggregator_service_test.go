package service

import (
	"testing"

	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SumAndPercentage(t *testing.T) {
	aggregator := NewScoreAggregatorService()
	exam := &model.Exam{TotalPoints: 10, PassingScore: 6}
	answers := []model.Answer{
		{QuestionNumber: 1, PointsAwarded: 5},
		{QuestionNumber: 2, PointsAwarded: 2.5},
	}

	summary, err := aggregator.Aggregate(exam, answers, false)
	require.NoError(t, err)
	assert.Equal(t, 7.5, summary.TotalScore)
	assert.Equal(t, 75.0, summary.PercentageScore)
	require.NotNil(t, summary.Passed)
	assert.True(t, *summary.Passed)
}

func TestAggregate_PassedAgainstAbsoluteThreshold(t *testing.T) {
	aggregator := NewScoreAggregatorService()
	exam := &model.Exam{TotalPoints: 10, PassingScore: 6}

	tests := []struct {
		name   string
		points float64
		passed bool
	}{
		{name: "above threshold", points: 10, passed: true},
		{name: "at threshold", points: 6, passed: true},
		{name: "below threshold", points: 5, passed: false},
		{name: "zero", points: 0, passed: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := aggregator.Aggregate(exam, []model.Answer{{QuestionNumber: 1, PointsAwarded: tc.points}}, false)
			require.NoError(t, err)
			require.NotNil(t, summary.Passed)
			assert.Equal(t, tc.passed, *summary.Passed)
		})
	}
}

func TestAggregate_PendingLeavesVerdictUndefined(t *testing.T) {
	aggregator := NewScoreAggregatorService()
	exam := &model.Exam{TotalPoints: 10, PassingScore: 6}
	answers := []model.Answer{
		{QuestionNumber: 1, PointsAwarded: 5},
		{QuestionNumber: 2, PointsAwarded: 0}, // subjective, awaiting manual grading
	}

	summary, err := aggregator.Aggregate(exam, answers, true)
	require.NoError(t, err)
	assert.Equal(t, 5.0, summary.TotalScore)
	assert.Equal(t, 50.0, summary.PercentageScore)
	assert.Nil(t, summary.Passed, "pass/fail is meaningless while grading is pending")
}

func TestAggregate_Idempotent(t *testing.T) {
	aggregator := NewScoreAggregatorService()
	exam := &model.Exam{TotalPoints: 15, PassingScore: 9}
	answers := []model.Answer{
		{QuestionNumber: 1, PointsAwarded: 5},
		{QuestionNumber: 2, PointsAwarded: 4},
	}

	first, err := aggregator.Aggregate(exam, answers, false)
	require.NoError(t, err)
	second, err := aggregator.Aggregate(exam, answers, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregate_ZeroTotalPointsRejected(t *testing.T) {
	aggregator := NewScoreAggregatorService()
	exam := &model.Exam{TotalPoints: 0, PassingScore: 0}

	_, err := aggregator.Aggregate(exam, nil, false)
	var valErr *apperr.ValidationError
	require.ErrorAs(t, err, &valErr)
}
