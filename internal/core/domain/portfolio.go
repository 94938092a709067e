package domain

// PortfolioRow is one campaign in the multi-campaign table.
type PortfolioRow struct {
	SourceID      string       `json:"source_id"`
	Name          string       `json:"name"`
	PacingStatus  PacingStatus `json:"pacing_status"`
	DaysVariance  int          `json:"days_variance"`
	ROAS          float64      `json:"roas"`
	Sales         float64      `json:"sales"`
	Spend         float64      `json:"spend"`
	Budget        float64      `json:"budget"`
	BudgetPct     float64      `json:"budget_pct"`
	DaysRemaining int          `json:"days_remaining"`
	OfferCount    int          `json:"offer_count"`
}

// PortfolioTotals sums the table.
type PortfolioTotals struct {
	Spend  float64 `json:"spend"`
	Sales  float64 `json:"sales"`
	Budget float64 `json:"budget"`
	ROAS   float64 `json:"roas"`
	// BudgetPct is total spend as a percentage of total budget.
	BudgetPct float64 `json:"budget_pct"`
}

// Portfolio is the sorted multi-campaign view.
type Portfolio struct {
	Rows   []PortfolioRow  `json:"rows"`
	Totals PortfolioTotals `json:"totals"`
}
