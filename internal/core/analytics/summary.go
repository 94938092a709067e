package analytics

import "campaign-lens/internal/core/domain"

// Summarize totals the daily records whose ISO date falls in [from, to].
// An empty bound leaves that side open.
func Summarize(records []domain.DailyRecord, from, to string) domain.Performance {
	p := domain.Performance{From: from, To: to}
	for _, d := range records {
		if from != "" && d.Date < from {
			continue
		}
		if to != "" && d.Date > to {
			continue
		}
		p.Days++
		p.Sales += d.Sales
		p.Cost += d.Cost
		p.Units += d.Units
		p.Trips += d.Trips
		p.Buyers += d.Buyers
	}
	p.ROAS = domain.Ratio(p.Sales, p.Cost)
	p.CAC = domain.Ratio(p.Cost, p.Buyers)
	p.CostPerUnit = domain.Ratio(p.Cost, p.Units)
	return p
}

// Compare returns the percentage change of current against baseline.
// Each change is nil when its baseline value is not positive.
func Compare(current, baseline domain.Performance) domain.PerformanceChange {
	return domain.PerformanceChange{
		Sales:  change(current.Sales, baseline.Sales),
		Cost:   change(current.Cost, baseline.Cost),
		Units:  change(current.Units, baseline.Units),
		Buyers: change(current.Buyers, baseline.Buyers),
		ROAS:   change(current.ROAS, baseline.ROAS),
		CAC:    change(current.CAC, baseline.CAC),
	}
}

// Report summarizes [from, to] and, when the comparison range holds any
// records, compares against it.
func Report(records []domain.DailyRecord, from, to, compareFrom, compareTo string) domain.PerformanceReport {
	r := domain.PerformanceReport{Current: Summarize(records, from, to)}
	if compareFrom == "" && compareTo == "" {
		return r
	}
	base := Summarize(records, compareFrom, compareTo)
	if base.Days == 0 {
		return r
	}
	changes := Compare(r.Current, base)
	r.Comparison = &base
	r.Changes = &changes
	return r
}

func change(current, baseline float64) *float64 {
	if baseline <= 0 {
		return nil
	}
	v := domain.Change(current, baseline)
	return &v
}
