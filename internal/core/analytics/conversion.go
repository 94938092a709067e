package analytics

import (
	"fmt"

	"campaign-lens/internal/core/domain"
)

const (
	lowCompletionPct    = 50
	strongCompletionPct = 70
	valueMultiplierMin  = 1.1
)

// Conversion sums the buyer/redeemer funnel over every offer. It returns
// nil for a campaign without offers.
func Conversion(c domain.Campaign) *domain.ConversionMetrics {
	if len(c.Offers) == 0 {
		return nil
	}
	var t domain.ConversionTotals
	for _, o := range c.Offers {
		t.Audience += o.Audience
		t.Buyers += o.Buyers
		t.Redeemers += o.Redeemers
		t.BuyerSales += o.BuyerSales
		t.RedeemerSales += o.RedeemerSales
		t.BuyerUnits += o.BuyerUnits
		t.RedeemerUnits += o.RedeemerUnits
		t.BuyerTrips += o.BuyerTrips
		t.RedeemerTrips += o.RedeemerTrips
		t.Cost += o.Cost
	}
	t.CompletionRate = domain.Percent(t.Redeemers, t.Buyers)
	t.BuyerValuePerTrip = domain.Ratio(t.BuyerSales, t.BuyerTrips)
	t.RedeemerValuePerTrip = domain.Ratio(t.RedeemerSales, t.RedeemerTrips)
	t.UnitsPerBuyer = domain.Ratio(t.BuyerUnits, t.Buyers)
	t.UnitsPerRedeemer = domain.Ratio(t.RedeemerUnits, t.Redeemers)
	t.TripsPerBuyer = domain.Ratio(t.BuyerTrips, t.Buyers)
	t.TripsPerRedeemer = domain.Ratio(t.RedeemerTrips, t.Redeemers)

	return &domain.ConversionMetrics{
		Totals:   t,
		Offers:   c.Offers,
		Insights: Insights(t),
	}
}

// Insights applies the funnel rules to a set of totals.
func Insights(t domain.ConversionTotals) []domain.Insight {
	insights := []domain.Insight{}
	switch {
	case t.CompletionRate < lowCompletionPct:
		insights = append(insights, domain.Insight{
			Level:       domain.InsightWarning,
			Title:       "Low Completion Rate",
			Description: fmt.Sprintf("Only %.1f%% of buyers complete offers.", t.CompletionRate),
		})
	case t.CompletionRate > strongCompletionPct:
		insights = append(insights, domain.Insight{
			Level:       domain.InsightSuccess,
			Title:       "Strong Completion Rate",
			Description: fmt.Sprintf("%.1f%% completion rate.", t.CompletionRate),
		})
	}

	if mult := domain.Ratio(t.RedeemerValuePerTrip, t.BuyerValuePerTrip); mult > valueMultiplierMin {
		insights = append(insights, domain.Insight{
			Level: domain.InsightSuccess,
			Title: "Redeemers Drive Higher Value",
			Description: fmt.Sprintf("Redeemers spend $%.2f/trip vs $%.2f for all buyers.",
				t.RedeemerValuePerTrip, t.BuyerValuePerTrip),
			Metric: fmt.Sprintf("%.0f%% more per trip", (mult-1)*100),
		})
	}
	return insights
}
