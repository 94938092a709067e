package domain

import "time"

// Promo period labels.
const (
	PeriodPre    = "pre"
	PeriodDuring = "during"
	PeriodPost   = "post"
)

// PromoWindow aggregates the daily records of one inclusive date window.
// Days is the number of records found; the averages divide by at least one.
type PromoWindow struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Sales         float64   `json:"sales"`
	Units         float64   `json:"units"`
	Buyers        float64   `json:"buyers"`
	Cost          float64   `json:"cost"`
	Days          int       `json:"days"`
	ROAS          float64   `json:"roas"`
	AvgDailySales float64   `json:"avg_daily_sales"`
	AvgDailyUnits float64   `json:"avg_daily_units"`
}

// PromoChange is the percentage change of a window against the pre window.
type PromoChange struct {
	Sales  float64 `json:"sales_change"`
	Units  float64 `json:"units_change"`
	Buyers float64 `json:"buyers_change"`
	Cost   float64 `json:"cost_change"`
	ROAS   float64 `json:"roas_change"`
}

// PromoPoint tags a daily record with the period it fell into.
type PromoPoint struct {
	DailyRecord
	Period string `json:"period"`
}

// PromoAnalysis compares a promo window with equal-length windows directly
// before and after it.
type PromoAnalysis struct {
	PromoType    string       `json:"promo_type,omitempty"`
	PromoDays    int          `json:"promo_days"`
	Pre          PromoWindow  `json:"pre"`
	During       PromoWindow  `json:"during"`
	Post         PromoWindow  `json:"post"`
	DuringChange PromoChange  `json:"during_change"`
	PostChange   PromoChange  `json:"post_change"`
	Points       []PromoPoint `json:"points"`
}
