package domain

import (
	"fmt"
	"strings"
	"time"
)

// PacingStatus classifies the projected budget trajectory.
type PacingStatus string

const (
	PacingComplete PacingStatus = "complete"
	PacingEarly    PacingStatus = "early"
	PacingLate     PacingStatus = "late"
	PacingOnTrack  PacingStatus = "onTrack"
)

// Label is the human wording used by reports.
func (s PacingStatus) Label() string {
	switch s {
	case PacingComplete:
		return "Complete"
	case PacingEarly:
		return "Ending Early"
	case PacingLate:
		return "Under Pacing"
	default:
		return "On Track"
	}
}

// ExtensionUnit is the unit of an extension request.
type ExtensionUnit string

const (
	ExtendDays   ExtensionUnit = "days"
	ExtendWeeks  ExtensionUnit = "weeks"
	ExtendMonths ExtensionUnit = "months"
)

// ParseExtensionUnit accepts days, weeks or months (case-insensitive).
func ParseExtensionUnit(s string) (ExtensionUnit, error) {
	switch u := ExtensionUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case ExtendDays, ExtendWeeks, ExtendMonths:
		return u, nil
	case "":
		return ExtendDays, nil
	default:
		return "", fmt.Errorf("unknown extension unit %q", s)
	}
}

// Extension asks how much a campaign extension would cost.
type Extension struct {
	Amount int           `json:"amount"`
	Unit   ExtensionUnit `json:"unit"`
}

// Days normalises the request to calendar days. A month counts as 30 days.
func (e Extension) Days() int {
	switch e.Unit {
	case ExtendWeeks:
		return e.Amount * 7
	case ExtendMonths:
		return e.Amount * 30
	default:
		return e.Amount
	}
}

// ExtensionQuote is the priced answer to an Extension.
type ExtensionQuote struct {
	Amount     int           `json:"amount"`
	Unit       ExtensionUnit `json:"unit"`
	Days       int           `json:"days"`
	Cost       float64       `json:"cost"`
	NewEndDate time.Time     `json:"new_end_date"`
}

// PacingMetrics is the on-demand pacing projection for one campaign. When
// ExhaustionUnbounded is set the campaign is not spending, so
// DaysUntilBudgetExhausted, ProjectedEndDate and DaysVariance carry no value.
type PacingMetrics struct {
	StartDate     time.Time `json:"start_date"`
	TargetEndDate time.Time `json:"target_end_date"`

	TotalBudget     float64 `json:"total_budget"`
	TotalSpent      float64 `json:"total_spent"`
	RemainingBudget float64 `json:"remaining_budget"`

	TotalCampaignDays int `json:"total_campaign_days"`
	DaysElapsed       int `json:"days_elapsed"`
	DaysRemaining     int `json:"days_remaining"`

	OverallAvgSpend     float64 `json:"overall_avg_spend"`
	RecentAvgSpend      float64 `json:"recent_avg_spend"`
	ProjectedTotalSpend float64 `json:"projected_total_spend"`

	DaysUntilBudgetExhausted float64   `json:"days_until_budget_exhausted"`
	ExhaustionUnbounded      bool      `json:"exhaustion_unbounded"`
	ProjectedEndDate         time.Time `json:"projected_end_date"`
	DaysVariance             int       `json:"days_variance"`

	ExpectedSpendByNow float64 `json:"expected_spend_by_now"`
	PacingRatio        float64 `json:"pacing_ratio"`

	Status            PacingStatus `json:"status"`
	BudgetConsumedPct float64      `json:"budget_consumed_pct"`
	TimeElapsedPct    float64      `json:"time_elapsed_pct"`

	Extension *ExtensionQuote `json:"extension,omitempty"`
}

// SpendPoint is one day on the cumulative spend curve.
type SpendPoint struct {
	Date     string  `json:"date"`
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
	Budget   float64 `json:"budget"`
}
