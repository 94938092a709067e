package analytics

import (
	"time"

	"campaign-lens/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyRun builds n consecutive daily records starting at start, each with
// the given sales and cost.
func dailyRun(start time.Time, n int, sales, cost float64) []domain.DailyRecord {
	out := make([]domain.DailyRecord, 0, n)
	for i := range n {
		day := start.AddDate(0, 0, i)
		d := domain.DailyRecord{
			Date:   day.Format(time.DateOnly),
			Day:    day,
			Sales:  sales,
			Units:  sales / 10,
			Buyers: sales / 20,
			Cost:   cost,
		}
		d.Derive()
		out = append(out, d)
	}
	return out
}

func campaignWith(start, end time.Time, budget, cost float64, daily []domain.DailyRecord) domain.Campaign {
	return domain.Campaign{
		SourceID: "c.csv",
		Name:     "c",
		Summary: &domain.Summary{
			StartDate: start,
			EndDate:   end,
			Budget:    budget,
			Cost:      cost,
		},
		Daily: daily,
	}
}
