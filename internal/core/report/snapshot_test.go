package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-lens/internal/core/classify"
	"campaign-lens/internal/core/domain"
)

func TestParseAnalysisType(t *testing.T) {
	got, err := ParseAnalysisType("")
	require.NoError(t, err)
	assert.Equal(t, AnalysisReport, got)

	got, err = ParseAnalysisType(" Pacing ")
	require.NoError(t, err)
	assert.Equal(t, AnalysisPacing, got)

	_, err = ParseAnalysisType("poem")
	assert.Error(t, err)
}

func snapshotCampaign() domain.Campaign {
	return domain.Campaign{
		Name:  "Spring Push",
		Group: "Snacks",
		Summary: &domain.Summary{
			StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC),
			Budget:    40000,
			Cost:      12500,
		},
		Offers: []domain.Offer{
			{Name: "NCE", Tactic: "NCE", CAC: 1.25, IsAcquisitionTactic: true},
			{Name: "Loyal", Tactic: "Loyalist", CAC: 1.03, IsBrandBuyerTactic: true, IsSpendThreshold: true},
		},
	}
}

func TestBuildMinimal(t *testing.T) {
	s := Build(snapshotCampaign(), Inputs{})

	assert.Equal(t, AnalysisReport, s.AnalysisType)
	assert.Equal(t, "Spring Push", s.CampaignName)
	assert.Equal(t, "Mar 1, 2024 to May 30, 2024", s.DateRange)
	require.NotNil(t, s.Budget)
	assert.Equal(t, 40000.0, *s.Budget)
	assert.Equal(t, 12500.0, *s.Spent)
	assert.True(t, s.HasSpendThreshold)

	assert.Nil(t, s.Sales)
	assert.Nil(t, s.DaysElapsed)
	assert.Nil(t, s.CompletionRate)
	assert.Empty(t, s.PacingStatus)
	assert.Nil(t, s.Pre)

	require.Len(t, s.Offers, 2)
	require.NotNil(t, s.Offers[0].CAC)
	assert.Equal(t, 1.25, *s.Offers[0].CAC)
	assert.Nil(t, s.Offers[1].CAC, "brand buyer offers carry no CAC")
	assert.Equal(t, classify.FocusCAC, s.Offers[0].MetricFocus)
	assert.Equal(t, classify.FocusROAS, s.Offers[1].MetricFocus)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "sales")
	assert.Nil(t, decoded["sales"])
	assert.Equal(t, "Spring Push", decoded["campaignName"])
}

func TestBuildFull(t *testing.T) {
	c := snapshotCampaign()
	start := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	in := Inputs{
		Type:        AnalysisPromo,
		Performance: &domain.Performance{Sales: 1000, Cost: 250, ROAS: 4, Buyers: 40, Units: 90},
		Pacing: &domain.PacingMetrics{
			BudgetConsumedPct: 31.25,
			DaysElapsed:       0,
			TotalCampaignDays: 90,
			RecentAvgSpend:    400,
			Status:            domain.PacingLate,
		},
		Conversion: &domain.ConversionMetrics{Totals: domain.ConversionTotals{CompletionRate: 0}},
		Promo: &domain.PromoAnalysis{
			PromoType:    "pops",
			Pre:          domain.PromoWindow{Start: start.AddDate(0, 0, -7), End: start.AddDate(0, 0, -1), Days: 7},
			During:       domain.PromoWindow{Start: start, End: start.AddDate(0, 0, 6), Days: 7, Sales: 700},
			Post:         domain.PromoWindow{},
			DuringChange: domain.PromoChange{Sales: 25, ROAS: -5},
		},
		Question: "why?",
	}
	s := Build(c, in)

	assert.Equal(t, AnalysisPromo, s.AnalysisType)
	assert.Equal(t, 1000.0, *s.Sales)
	assert.Equal(t, 4.0, *s.ROAS)
	require.NotNil(t, s.DaysElapsed)
	assert.Equal(t, 0, *s.DaysElapsed, "zero is present, not absent")
	assert.Equal(t, 90, *s.TotalDays)
	assert.Equal(t, "Under Pacing", s.PacingStatus)
	require.NotNil(t, s.CompletionRate)
	assert.Zero(t, *s.CompletionRate)
	assert.Equal(t, "why?", s.Question)

	assert.Equal(t, "pops", s.PromoType)
	require.NotNil(t, s.Pre)
	assert.Nil(t, s.Pre.SalesChange)
	assert.Equal(t, "Mar 7, 2024 - Mar 13, 2024", s.Pre.DateRange)
	require.NotNil(t, s.During.SalesChange)
	assert.Equal(t, 25.0, *s.During.SalesChange)
	assert.Equal(t, -5.0, *s.During.ROASChange)
	assert.Equal(t, "N/A - N/A", s.Post.DateRange)
}
