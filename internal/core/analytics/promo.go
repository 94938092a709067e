package analytics

import (
	"time"

	"campaign-lens/internal/core/domain"
)

// Promo compares the inclusive window [start, end] with the equally long
// windows directly before and after it. It returns nil when either bound
// is missing or end falls before start.
func Promo(records []domain.DailyRecord, start, end time.Time) *domain.PromoAnalysis {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	n := daysBetween(start, end) + 1
	if n <= 0 {
		return nil
	}

	a := &domain.PromoAnalysis{PromoDays: n}
	var points []domain.PromoPoint
	a.Pre, points = promoWindow(records, addDays(start, -n), addDays(start, -1), domain.PeriodPre, points)
	a.During, points = promoWindow(records, start, end, domain.PeriodDuring, points)
	a.Post, points = promoWindow(records, addDays(end, 1), addDays(end, n), domain.PeriodPost, points)
	a.Points = points

	a.DuringChange = promoChange(a.During, a.Pre)
	a.PostChange = promoChange(a.Post, a.Pre)
	return a
}

func promoWindow(records []domain.DailyRecord, start, end time.Time, period string, points []domain.PromoPoint) (domain.PromoWindow, []domain.PromoPoint) {
	w := domain.PromoWindow{Start: start, End: end}
	from, to := isoDate(start), isoDate(end)
	for _, d := range records {
		if d.Date < from || d.Date > to {
			continue
		}
		w.Sales += d.Sales
		w.Units += d.Units
		w.Buyers += d.Buyers
		w.Cost += d.Cost
		w.Days++
		points = append(points, domain.PromoPoint{DailyRecord: d, Period: period})
	}
	w.ROAS = domain.Ratio(w.Sales, w.Cost)
	div := float64(max(w.Days, 1))
	w.AvgDailySales = w.Sales / div
	w.AvgDailyUnits = w.Units / div
	return w, points
}

func promoChange(w, baseline domain.PromoWindow) domain.PromoChange {
	return domain.PromoChange{
		Sales:  domain.Change(w.Sales, baseline.Sales),
		Units:  domain.Change(w.Units, baseline.Units),
		Buyers: domain.Change(w.Buyers, baseline.Buyers),
		Cost:   domain.Change(w.Cost, baseline.Cost),
		ROAS:   domain.Change(w.ROAS, baseline.ROAS),
	}
}
