package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"campaign-lens/internal/core/domain"
)

// SortKey names a portfolio column.
type SortKey string

const (
	SortName          SortKey = "name"
	SortPacingStatus  SortKey = "pacing_status"
	SortDaysVariance  SortKey = "days_variance"
	SortROAS          SortKey = "roas"
	SortSales         SortKey = "sales"
	SortSpend         SortKey = "spend"
	SortBudget        SortKey = "budget"
	SortBudgetPct     SortKey = "budget_pct"
	SortDaysRemaining SortKey = "days_remaining"
	SortOfferCount    SortKey = "offer_count"
)

var sortKeys = []SortKey{
	SortName, SortPacingStatus, SortDaysVariance, SortROAS, SortSales,
	SortSpend, SortBudget, SortBudgetPct, SortDaysRemaining, SortOfferCount,
}

// ParseSortKey validates a column name. Empty selects SortName.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortName, nil
	}
	k := SortKey(strings.ToLower(s))
	if !slices.Contains(sortKeys, k) {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return k, nil
}

// Portfolio builds one row per campaign, sorted by key. Pacing uses the
// summary spend and budget; sales, spend and ROAS come from the daily
// records.
func Portfolio(campaigns []domain.Campaign, now time.Time, key SortKey, desc bool) domain.Portfolio {
	p := domain.Portfolio{Rows: make([]domain.PortfolioRow, 0, len(campaigns))}
	for _, c := range campaigns {
		row := portfolioRow(c, now)
		p.Rows = append(p.Rows, row)
		p.Totals.Spend += row.Spend
		p.Totals.Sales += row.Sales
		p.Totals.Budget += row.Budget
	}
	p.Totals.ROAS = domain.Ratio(p.Totals.Sales, p.Totals.Spend)
	p.Totals.BudgetPct = domain.Percent(p.Totals.Spend, p.Totals.Budget)

	slices.SortStableFunc(p.Rows, func(a, b domain.PortfolioRow) int {
		r := compareRows(a, b, key)
		if desc {
			return -r
		}
		return r
	})
	return p
}

func portfolioRow(c domain.Campaign, now time.Time) domain.PortfolioRow {
	row := domain.PortfolioRow{
		SourceID:   c.SourceID,
		Name:       c.Name,
		OfferCount: len(c.Offers),
	}
	for _, d := range c.Daily {
		row.Sales += d.Sales
		row.Spend += d.Cost
	}
	row.ROAS = domain.Ratio(row.Sales, row.Spend)

	bounded := true
	if s := c.Summary; s != nil {
		row.Budget = s.Budget
		row.BudgetPct = domain.Percent(s.Cost, s.Budget)
		var daysElapsed int
		if !s.StartDate.IsZero() {
			daysElapsed = daysBetween(s.StartDate, now)
		}
		if !s.EndDate.IsZero() {
			row.DaysRemaining = max(daysBetween(now, s.EndDate), 0)
			var avg float64
			if daysElapsed > 0 {
				avg = s.Cost / float64(daysElapsed)
			}
			days, unbounded := exhaustion(s.Budget-s.Cost, avg)
			bounded = !unbounded
			if bounded {
				row.DaysVariance = variance(days, now, s.EndDate)
			}
		}
	}
	row.PacingStatus = ClassifyPacing(row.DaysRemaining, row.DaysVariance, bounded)
	return row
}

func compareRows(a, b domain.PortfolioRow, key SortKey) int {
	switch key {
	case SortPacingStatus:
		return strings.Compare(strings.ToLower(string(a.PacingStatus)), strings.ToLower(string(b.PacingStatus)))
	case SortDaysVariance:
		return cmp.Compare(a.DaysVariance, b.DaysVariance)
	case SortROAS:
		return cmp.Compare(a.ROAS, b.ROAS)
	case SortSales:
		return cmp.Compare(a.Sales, b.Sales)
	case SortSpend:
		return cmp.Compare(a.Spend, b.Spend)
	case SortBudget:
		return cmp.Compare(a.Budget, b.Budget)
	case SortBudgetPct:
		return cmp.Compare(a.BudgetPct, b.BudgetPct)
	case SortDaysRemaining:
		return cmp.Compare(a.DaysRemaining, b.DaysRemaining)
	case SortOfferCount:
		return cmp.Compare(a.OfferCount, b.OfferCount)
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
