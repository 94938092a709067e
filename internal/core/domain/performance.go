package domain

// Performance totals the daily records of a date range.
type Performance struct {
	From        string  `json:"from,omitempty"`
	To          string  `json:"to,omitempty"`
	Days        int     `json:"days"`
	Sales       float64 `json:"sales"`
	Cost        float64 `json:"cost"`
	Units       float64 `json:"units"`
	Trips       float64 `json:"trips"`
	Buyers      float64 `json:"buyers"`
	ROAS        float64 `json:"roas"`
	CAC         float64 `json:"cac"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

// PerformanceChange holds percentage changes against a comparison range.
// A nil field means the comparison value was not positive.
type PerformanceChange struct {
	Sales  *float64 `json:"sales"`
	Cost   *float64 `json:"cost"`
	Units  *float64 `json:"units"`
	Buyers *float64 `json:"buyers"`
	ROAS   *float64 `json:"roas"`
	CAC    *float64 `json:"cac"`
}

// PerformanceReport is a range summary with an optional comparison.
type PerformanceReport struct {
	Current    Performance        `json:"current"`
	Comparison *Performance       `json:"comparison,omitempty"`
	Changes    *PerformanceChange `json:"changes,omitempty"`
}
