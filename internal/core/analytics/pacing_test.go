package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-lens/internal/core/domain"
)

var (
	q1Start = date(2024, time.January, 1)
	q1End   = date(2024, time.March, 31)
)

func TestPacingMidway(t *testing.T) {
	c := campaignWith(q1Start, q1End, 10000, 4500, nil)
	m := Pacing(c, PacingRequest{Now: addDays(q1Start, 45)})
	require.NotNil(t, m)

	assert.Equal(t, 90, m.TotalCampaignDays)
	assert.Equal(t, 45, m.DaysElapsed)
	assert.Equal(t, 45, m.DaysRemaining)
	assert.InDelta(t, 50, m.TimeElapsedPct, 1e-9)
	assert.InDelta(t, 45, m.BudgetConsumedPct, 1e-9)
	assert.Equal(t, 5500.0, m.RemainingBudget)
	assert.InDelta(t, 100, m.OverallAvgSpend, 1e-9)
	assert.InDelta(t, 100, m.RecentAvgSpend, 1e-9, "no daily rows falls back to the overall rate")
	assert.InDelta(t, 9000, m.ProjectedTotalSpend, 1e-9)
	assert.InDelta(t, 55, m.DaysUntilBudgetExhausted, 1e-9)
	assert.False(t, m.ExhaustionUnbounded)
	assert.Equal(t, date(2024, time.April, 10), m.ProjectedEndDate)
	assert.Equal(t, 10, m.DaysVariance)
	assert.InDelta(t, 5000, m.ExpectedSpendByNow, 1e-9)
	assert.InDelta(t, 0.9, m.PacingRatio, 1e-9)
	assert.Equal(t, domain.PacingOnTrack, m.Status)
	assert.Nil(t, m.Extension)
}

func TestPacingEarlyAndLate(t *testing.T) {
	now := addDays(q1Start, 45)

	early := Pacing(campaignWith(q1Start, q1End, 10000, 9000, nil), PacingRequest{Now: now})
	require.NotNil(t, early)
	assert.Equal(t, -40, early.DaysVariance)
	assert.Equal(t, domain.PacingEarly, early.Status)

	late := Pacing(campaignWith(q1Start, q1End, 10000, 1000, nil), PacingRequest{Now: now})
	require.NotNil(t, late)
	assert.Equal(t, 360, late.DaysVariance)
	assert.Equal(t, domain.PacingLate, late.Status)
}

func TestPacingComplete(t *testing.T) {
	c := campaignWith(q1Start, q1End, 10000, 9800, nil)
	m := Pacing(c, PacingRequest{Now: date(2024, time.April, 15)})
	require.NotNil(t, m)
	assert.Equal(t, -15, m.DaysRemaining)
	assert.Equal(t, domain.PacingComplete, m.Status)
}

func TestPacingUnbounded(t *testing.T) {
	c := campaignWith(q1Start, q1End, 10000, 0, nil)
	m := Pacing(c, PacingRequest{Now: addDays(q1Start, 10)})
	require.NotNil(t, m)
	assert.True(t, m.ExhaustionUnbounded)
	assert.Zero(t, m.DaysUntilBudgetExhausted)
	assert.True(t, m.ProjectedEndDate.IsZero())
	assert.Zero(t, m.DaysVariance)
	assert.Equal(t, domain.PacingOnTrack, m.Status)

	beforeStart := Pacing(c, PacingRequest{Now: addDays(q1Start, -5)})
	require.NotNil(t, beforeStart)
	assert.Zero(t, beforeStart.OverallAvgSpend)
	assert.True(t, beforeStart.ExhaustionUnbounded)
}

func TestPacingEndDateOverride(t *testing.T) {
	c := campaignWith(q1Start, q1End, 10000, 4500, nil)
	m := Pacing(c, PacingRequest{Now: addDays(q1Start, 45), EndDate: date(2024, time.April, 30)})
	require.NotNil(t, m)
	assert.Equal(t, date(2024, time.April, 30), m.TargetEndDate)
	assert.Equal(t, 120, m.TotalCampaignDays)
	assert.Equal(t, 75, m.DaysRemaining)

	noEnd := campaignWith(q1Start, time.Time{}, 10000, 4500, nil)
	assert.Nil(t, Pacing(noEnd, PacingRequest{Now: q1Start}))
	assert.NotNil(t, Pacing(noEnd, PacingRequest{Now: q1Start, EndDate: q1End}))
}

func TestPacingNil(t *testing.T) {
	assert.Nil(t, Pacing(domain.Campaign{}, PacingRequest{Now: q1Start}))
	assert.Nil(t, Pacing(campaignWith(time.Time{}, q1End, 1, 1, nil), PacingRequest{Now: q1Start}))
}

func TestPacingExtension(t *testing.T) {
	daily := make([]domain.DailyRecord, 0, 20)
	for i := range 20 {
		daily = append(daily, dailyRun(addDays(q1Start, i), 1, 100, float64(i+1))...)
	}
	c := campaignWith(q1Start, q1End, 10000, 4500, daily)

	m := Pacing(c, PacingRequest{
		Now:       addDays(q1Start, 45),
		Extension: &domain.Extension{Amount: 2, Unit: domain.ExtendWeeks},
	})
	require.NotNil(t, m)
	assert.InDelta(t, 13.5, m.RecentAvgSpend, 1e-9)

	require.NotNil(t, m.Extension)
	assert.Equal(t, 14, m.Extension.Days)
	assert.InDelta(t, 189, m.Extension.Cost, 1e-9)
	assert.Equal(t, date(2024, time.April, 14), m.Extension.NewEndDate)
	assert.Equal(t, domain.ExtendWeeks, m.Extension.Unit)
}

func TestClassifyPacingBoundaries(t *testing.T) {
	tests := []struct {
		remaining, variance int
		bounded             bool
		want                domain.PacingStatus
	}{
		{10, -8, true, domain.PacingEarly},
		{10, -7, true, domain.PacingOnTrack},
		{10, 14, true, domain.PacingOnTrack},
		{10, 15, true, domain.PacingLate},
		{10, 0, true, domain.PacingOnTrack},
		{0, -100, true, domain.PacingComplete},
		{-3, 100, true, domain.PacingComplete},
		{10, 500, false, domain.PacingOnTrack},
		{0, 0, false, domain.PacingComplete},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPacing(tt.remaining, tt.variance, tt.bounded),
			"remaining=%d variance=%d bounded=%v", tt.remaining, tt.variance, tt.bounded)
	}
}

func TestSpendCurve(t *testing.T) {
	assert.Nil(t, SpendCurve(dailyRun(q1Start, 3, 10, 10), nil))

	m := &domain.PacingMetrics{TotalCampaignDays: 2, TotalBudget: 1000}
	points := SpendCurve(dailyRun(q1Start, 3, 10, 400), m)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, []float64{400, 800, 1200}, []float64{points[0].Actual, points[1].Actual, points[2].Actual})
	assert.Equal(t, []float64{500, 1000, 1000}, []float64{points[0].Expected, points[1].Expected, points[2].Expected})
	assert.Equal(t, 1000.0, points[2].Budget)
}
