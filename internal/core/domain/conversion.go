package domain

// ConversionTotals is the audience → buyer → redeemer funnel summed over
// every offer of a campaign.
type ConversionTotals struct {
	Audience      float64 `json:"audience"`
	Buyers        float64 `json:"buyers"`
	Redeemers     float64 `json:"redeemers"`
	BuyerSales    float64 `json:"buyer_sales"`
	RedeemerSales float64 `json:"redeemer_sales"`
	BuyerUnits    float64 `json:"buyer_units"`
	RedeemerUnits float64 `json:"redeemer_units"`
	BuyerTrips    float64 `json:"buyer_trips"`
	RedeemerTrips float64 `json:"redeemer_trips"`
	Cost          float64 `json:"cost"`

	CompletionRate       float64 `json:"completion_rate"`
	BuyerValuePerTrip    float64 `json:"buyer_value_per_trip"`
	RedeemerValuePerTrip float64 `json:"redeemer_value_per_trip"`
	UnitsPerBuyer        float64 `json:"units_per_buyer"`
	UnitsPerRedeemer     float64 `json:"units_per_redeemer"`
	TripsPerBuyer        float64 `json:"trips_per_buyer"`
	TripsPerRedeemer     float64 `json:"trips_per_redeemer"`
}

// InsightLevel grades an Insight.
type InsightLevel string

const (
	InsightWarning InsightLevel = "warning"
	InsightSuccess InsightLevel = "success"
)

// Insight is a short rule-based observation about the funnel.
type Insight struct {
	Level       InsightLevel `json:"level"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Metric      string       `json:"metric,omitempty"`
}

// ConversionMetrics bundles the funnel totals with the offers they came from.
type ConversionMetrics struct {
	Totals   ConversionTotals `json:"totals"`
	Offers   []Offer          `json:"offers"`
	Insights []Insight        `json:"insights"`
}
