package domain

import "time"

// DailyRecord is one calendar day of activity from the "Buyer Volume"
// table. Date keeps the ISO text as exported; Day is its parsed value.
type DailyRecord struct {
	Date   string    `json:"date"`
	Day    time.Time `json:"-"`
	Sales  float64   `json:"sales"`
	Units  float64   `json:"units"`
	Trips  float64   `json:"trips"`
	Buyers float64   `json:"buyers"`
	Cost   float64   `json:"cost"`

	ROAS          float64 `json:"roas"`
	CAC           float64 `json:"cac"`
	CostPerUnit   float64 `json:"cost_per_unit"`
	UnitsPerBuyer float64 `json:"units_per_buyer"`
	SalesPerBuyer float64 `json:"sales_per_buyer"`
}

// Derive fills the ratio fields from the raw values.
func (d *DailyRecord) Derive() {
	d.ROAS = Ratio(d.Sales, d.Cost)
	d.CAC = Ratio(d.Cost, d.Buyers)
	d.CostPerUnit = Ratio(d.Cost, d.Units)
	d.UnitsPerBuyer = Ratio(d.Units, d.Buyers)
	d.SalesPerBuyer = Ratio(d.Sales, d.Buyers)
}
