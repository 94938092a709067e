package analytics

import (
	"math"
	"time"

	"campaign-lens/internal/core/domain"
)

const (
	// recentWindow is how many trailing daily records feed the recent spend rate.
	recentWindow = 14

	earlyThresholdDays = -7
	lateThresholdDays  = 14

	// maxProjectionDays caps exhaustion projections so projected dates stay
	// within four-digit years; anything further out is treated as never.
	maxProjectionDays = 1e6
)

// PacingRequest carries the caller-chosen inputs of a pacing projection.
type PacingRequest struct {
	Now time.Time
	// EndDate overrides the summary end date when non-zero.
	EndDate   time.Time
	Extension *domain.Extension
}

// Pacing projects the campaign's budget trajectory. It returns nil when
// the campaign has no summary or no usable start or target date.
func Pacing(c domain.Campaign, req PacingRequest) *domain.PacingMetrics {
	s := c.Summary
	if s == nil {
		return nil
	}
	target := s.EndDate
	if !req.EndDate.IsZero() {
		target = req.EndDate
	}
	if s.StartDate.IsZero() || target.IsZero() {
		return nil
	}

	now := req.Now
	m := &domain.PacingMetrics{
		StartDate:         s.StartDate,
		TargetEndDate:     target,
		TotalBudget:       s.Budget,
		TotalSpent:        s.Cost,
		RemainingBudget:   s.Budget - s.Cost,
		TotalCampaignDays: daysBetween(s.StartDate, target),
		DaysElapsed:       daysBetween(s.StartDate, now),
		DaysRemaining:     daysBetween(now, target),
	}

	if m.DaysElapsed > 0 {
		m.OverallAvgSpend = m.TotalSpent / float64(m.DaysElapsed)
	}
	m.RecentAvgSpend = recentSpend(c.Daily, m.TotalSpent, m.DaysElapsed)
	m.ProjectedTotalSpend = m.OverallAvgSpend * float64(m.TotalCampaignDays)

	m.DaysUntilBudgetExhausted, m.ExhaustionUnbounded = exhaustion(m.RemainingBudget, m.OverallAvgSpend)
	if !m.ExhaustionUnbounded {
		d := m.DaysUntilBudgetExhausted
		whole := math.Floor(d)
		m.ProjectedEndDate = addDays(now, int(whole)).Add(time.Duration((d - whole) * float64(hoursPerDay*time.Hour)))
		m.DaysVariance = variance(d, now, target)
	}

	if m.TotalCampaignDays > 0 {
		m.ExpectedSpendByNow = float64(m.DaysElapsed) / float64(m.TotalCampaignDays) * m.TotalBudget
		m.TimeElapsedPct = float64(m.DaysElapsed) / float64(m.TotalCampaignDays) * 100
	}
	m.PacingRatio = 1
	if m.ExpectedSpendByNow > 0 {
		m.PacingRatio = m.TotalSpent / m.ExpectedSpendByNow
	}
	m.BudgetConsumedPct = domain.Percent(m.TotalSpent, m.TotalBudget)
	m.Status = ClassifyPacing(m.DaysRemaining, m.DaysVariance, !m.ExhaustionUnbounded)

	if req.Extension != nil {
		m.Extension = quote(*req.Extension, m.RecentAvgSpend, target)
	}
	return m
}

// ClassifyPacing grades a projection. bounded is false when the budget
// never runs out, in which case daysVariance is ignored.
func ClassifyPacing(daysRemaining, daysVariance int, bounded bool) domain.PacingStatus {
	switch {
	case daysRemaining <= 0:
		return domain.PacingComplete
	case !bounded:
		return domain.PacingOnTrack
	case daysVariance < earlyThresholdDays:
		return domain.PacingEarly
	case daysVariance > lateThresholdDays:
		return domain.PacingLate
	default:
		return domain.PacingOnTrack
	}
}

// SpendCurve is cumulative actual spend per daily record next to the
// straight-line expectation, which never exceeds the budget.
func SpendCurve(daily []domain.DailyRecord, m *domain.PacingMetrics) []domain.SpendPoint {
	if m == nil {
		return nil
	}
	points := make([]domain.SpendPoint, 0, len(daily))
	var cumulative float64
	for i, d := range daily {
		cumulative += d.Cost
		var expected float64
		if m.TotalCampaignDays > 0 {
			expected = math.Min(float64(i+1)/float64(m.TotalCampaignDays)*m.TotalBudget, m.TotalBudget)
		}
		points = append(points, domain.SpendPoint{
			Date:     d.Date,
			Actual:   cumulative,
			Expected: expected,
			Budget:   m.TotalBudget,
		})
	}
	return points
}

func recentSpend(daily []domain.DailyRecord, spent float64, daysElapsed int) float64 {
	if len(daily) == 0 {
		return spent / float64(max(daysElapsed, 1))
	}
	recent := daily[max(len(daily)-recentWindow, 0):]
	var sum float64
	for _, d := range recent {
		sum += d.Cost
	}
	return sum / float64(len(recent))
}

func exhaustion(remaining, avgSpend float64) (days float64, unbounded bool) {
	if avgSpend <= 0 {
		return 0, true
	}
	days = remaining / avgSpend
	if math.Abs(days) > maxProjectionDays {
		return 0, true
	}
	return days, false
}

// variance is the whole-day gap between the projected exhaustion date
// (now + days) and target, negative when the budget runs out first.
func variance(days float64, now, target time.Time) int {
	return int(math.Round(days + now.Sub(target).Hours()/hoursPerDay))
}

func quote(e domain.Extension, rate float64, target time.Time) *domain.ExtensionQuote {
	days := e.Days()
	return &domain.ExtensionQuote{
		Amount:     e.Amount,
		Unit:       e.Unit,
		Days:       days,
		Cost:       rate * float64(days),
		NewEndDate: addDays(target, days),
	}
}
