package domain

import "time"

// Campaign is one parsed export file. It is built once by the parser and
// only its offers' classification flags are attached afterwards. SourceID
// is the uploaded file name and is the stable key used for replacement and
// removal.
type Campaign struct {
	SourceID   string        `json:"source_id"`
	Name       string        `json:"name"`
	Group      string        `json:"group,omitempty"`
	Summary    *Summary      `json:"summary"`
	Offers     []Offer       `json:"offers"`
	Daily      []DailyRecord `json:"daily"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// Summary is the single aggregate row found under the "Start Date" header.
// A zero StartDate or EndDate means the cell was missing or unparseable.
type Summary struct {
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	Cost              float64           `json:"cost"`
	Budget            float64           `json:"budget"`
	BudgetConsumedPct float64           `json:"budget_consumed_pct"`
	DaysCompletePct   float64           `json:"days_complete_pct"`
	Fields            map[string]string `json:"fields"`
}

// HasSpendThreshold reports whether any offer requires a minimum spend.
func (c *Campaign) HasSpendThreshold() bool {
	for i := range c.Offers {
		if c.Offers[i].IsSpendThreshold {
			return true
		}
	}
	return false
}

// SegmentFlags summarises which offer segments the campaign runs.
type SegmentFlags struct {
	HasAcquisition bool `json:"has_acquisition"`
	HasBrandBuyer  bool `json:"has_brand_buyer"`
}

// Segments returns the segment flags across all offers.
func (c *Campaign) Segments() SegmentFlags {
	var f SegmentFlags
	for i := range c.Offers {
		f.HasAcquisition = f.HasAcquisition || c.Offers[i].IsAcquisitionTactic
		f.HasBrandBuyer = f.HasBrandBuyer || c.Offers[i].IsBrandBuyerTactic
	}
	return f
}
