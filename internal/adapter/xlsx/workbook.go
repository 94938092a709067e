// Package xlsx renders a campaign and its derived views as an Excel
// workbook.
package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"campaign-lens/internal/core/classify"
	"campaign-lens/internal/core/domain"
)

// Sheet names, in workbook order.
const (
	SheetSummary = "Summary"
	SheetOffers  = "Offers"
	SheetDaily   = "Daily"
	SheetPacing  = "Pacing"
)

const dateLayout = "2006-01-02"

// Report is everything one workbook shows. Pacing and Conversion may be nil.
type Report struct {
	Campaign   domain.Campaign
	Pacing     *domain.PacingMetrics
	Conversion *domain.ConversionMetrics
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, r Report) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Build returns the workbook without writing it. The caller closes it.
func Build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetOffers, SheetDaily, SheetPacing} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	writers := []func(*excelize.File, Report) error{
		writeSummary, writeOffers, writeDaily, writePacing,
	}
	for _, write := range writers {
		if err := write(f, r); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, r Report) error {
	c := r.Campaign
	rows := [][]any{
		{"Campaign", c.Name},
		{"Group", c.Group},
		{"Source", c.SourceID},
		{"Offers", len(c.Offers)},
		{"Daily records", len(c.Daily)},
	}
	if s := c.Summary; s != nil {
		rows = append(rows,
			[]any{"Start date", formatDate(s.StartDate)},
			[]any{"End date", formatDate(s.EndDate)},
			[]any{"Cost", s.Cost},
			[]any{"Budget", s.Budget},
			[]any{"% Budget consumed", s.BudgetConsumedPct},
			[]any{"% Days complete", s.DaysCompletePct},
		)
	}
	if cm := r.Conversion; cm != nil {
		rows = append(rows,
			[]any{"Completion rate", cm.Totals.CompletionRate},
			[]any{"Buyer value / trip", cm.Totals.BuyerValuePerTrip},
			[]any{"Redeemer value / trip", cm.Totals.RedeemerValuePerTrip},
		)
		for _, in := range cm.Insights {
			rows = append(rows, []any{in.Title, in.Description})
		}
	}
	return writeRows(f, SheetSummary, rows)
}

func writeOffers(f *excelize.File, r Report) error {
	rows := [][]any{{
		"Offer", "Offer ID", "Tactic", "Segment", "Spend threshold",
		"Audience", "Buyers", "Redeemers", "Cost", "ROAS", "Sales lift %",
		"Completion %", "Engagement %", "CAC", "Buyer value / trip",
	}}
	for _, o := range r.Campaign.Offers {
		var cac any = "n/a"
		if classify.MetricFocus(o) == classify.FocusCAC {
			cac = o.CAC
		}
		rows = append(rows, []any{
			o.Name, o.OfferID, o.Tactic, classify.Segment(o), o.IsSpendThreshold,
			o.Audience, o.Buyers, o.Redeemers, o.Cost, o.ROAS, o.SalesLiftPct,
			o.CompletionRate, o.EngagementRate, cac, o.BuyerValuePerTrip,
		})
	}
	return writeRows(f, SheetOffers, rows)
}

func writeDaily(f *excelize.File, r Report) error {
	rows := [][]any{{"Date", "Sales", "Units", "Trips", "Buyers", "Cost", "ROAS", "CAC", "Cost / unit"}}
	for _, d := range r.Campaign.Daily {
		rows = append(rows, []any{d.Date, d.Sales, d.Units, d.Trips, d.Buyers, d.Cost, d.ROAS, d.CAC, d.CostPerUnit})
	}
	return writeRows(f, SheetDaily, rows)
}

func writePacing(f *excelize.File, r Report) error {
	m := r.Pacing
	if m == nil {
		return writeRows(f, SheetPacing, [][]any{{"Pacing unavailable: summary dates missing"}})
	}
	rows := [][]any{
		{"Status", m.Status.Label()},
		{"Start date", formatDate(m.StartDate)},
		{"Target end date", formatDate(m.TargetEndDate)},
		{"Total budget", m.TotalBudget},
		{"Total spent", m.TotalSpent},
		{"Remaining budget", m.RemainingBudget},
		{"Days elapsed", m.DaysElapsed},
		{"Days remaining", m.DaysRemaining},
		{"Campaign days", m.TotalCampaignDays},
		{"Average daily spend", m.OverallAvgSpend},
		{"Recent daily spend", m.RecentAvgSpend},
		{"Projected total spend", m.ProjectedTotalSpend},
		{"Expected spend by now", m.ExpectedSpendByNow},
		{"Pacing ratio", m.PacingRatio},
		{"% Budget consumed", m.BudgetConsumedPct},
		{"% Time elapsed", m.TimeElapsedPct},
	}
	if m.ExhaustionUnbounded {
		rows = append(rows, []any{"Projected end date", "never"})
	} else {
		rows = append(rows,
			[]any{"Projected end date", formatDate(m.ProjectedEndDate)},
			[]any{"Days variance", m.DaysVariance},
		)
	}
	return writeRows(f, SheetPacing, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
