package domain

// Offer is one promotional offer row. Raw numeric cells are parsed once at
// ingest; the derived ratios are filled by Derive and never recomputed.
type Offer struct {
	Name      string `json:"name"`
	OfferID   string `json:"offer_id"`
	Tactic    string `json:"tactic"`
	SubBanner string `json:"sub_banner"`

	Audience          float64 `json:"audience"`
	Buyers            float64 `json:"buyers"`
	Redeemers         float64 `json:"redeemers"`
	Redemptions       float64 `json:"redemptions"`
	Cost              float64 `json:"cost"`
	Budget            float64 `json:"budget"`
	BuyerSales        float64 `json:"buyer_sales"`
	RedeemerSales     float64 `json:"redeemer_sales"`
	BuyerUnits        float64 `json:"buyer_units"`
	RedeemerUnits     float64 `json:"redeemer_units"`
	BuyerTrips        float64 `json:"buyer_trips"`
	RedeemerTrips     float64 `json:"redeemer_trips"`
	ROAS              float64 `json:"roas"`
	Points            float64 `json:"points"`
	SalesLiftPct      float64 `json:"sales_lift_pct"`
	IncrementalSales  float64 `json:"incremental_sales"`
	CostPerDay        float64 `json:"cost_per_day"`
	BudgetConsumedPct float64 `json:"budget_consumed_pct"`
	DaysCompletePct   float64 `json:"days_complete_pct"`
	RedemptionRate    float64 `json:"redemption_rate"`

	CompletionRate       float64 `json:"completion_rate"`
	EngagementRate       float64 `json:"engagement_rate"`
	CAC                  float64 `json:"cac"`
	CostPerRedeemer      float64 `json:"cost_per_redeemer"`
	BuyerValuePerTrip    float64 `json:"buyer_value_per_trip"`
	RedeemerValuePerTrip float64 `json:"redeemer_value_per_trip"`
	UnitsPerBuyer        float64 `json:"units_per_buyer"`
	UnitsPerRedeemer     float64 `json:"units_per_redeemer"`

	IsSpendThreshold    bool `json:"is_spend_threshold"`
	IsAcquisitionTactic bool `json:"is_acquisition_tactic"`
	IsBrandBuyerTactic  bool `json:"is_brand_buyer_tactic"`

	// Fields keeps every cell of the row keyed by its column header.
	Fields map[string]string `json:"fields"`
}

// Derive fills the ratio fields from the raw counts.
func (o *Offer) Derive() {
	o.CompletionRate = Percent(o.Redeemers, o.Buyers)
	o.EngagementRate = Percent(o.Buyers, o.Audience)
	o.CAC = Ratio(o.Cost, o.Buyers)
	o.CostPerRedeemer = Ratio(o.Cost, o.Redeemers)
	o.BuyerValuePerTrip = Ratio(o.BuyerSales, o.BuyerTrips)
	o.RedeemerValuePerTrip = Ratio(o.RedeemerSales, o.RedeemerTrips)
	o.UnitsPerBuyer = Ratio(o.BuyerUnits, o.Buyers)
	o.UnitsPerRedeemer = Ratio(o.RedeemerUnits, o.Redeemers)
}

// CACMeaningful reports whether cost per buyer is a real acquisition cost
// for this offer. Only acquisition segments surface CAC; for brand buyers
// ROAS and sales lift are the efficiency measures.
func (o *Offer) CACMeaningful() bool {
	return o.IsAcquisitionTactic
}
