package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-lens/internal/core/domain"
)

func promoRecords() []domain.DailyRecord {
	start := date(2024, time.January, 1)
	var records []domain.DailyRecord
	records = append(records, dailyRun(start, 7, 100, 50)...)
	records = append(records, dailyRun(addDays(start, 7), 7, 150, 50)...)
	records = append(records, dailyRun(addDays(start, 14), 7, 120, 50)...)
	return records
}

func TestPromoSymmetricWindows(t *testing.T) {
	a := Promo(promoRecords(), date(2024, time.January, 8), date(2024, time.January, 14))
	require.NotNil(t, a)

	assert.Equal(t, 7, a.PromoDays)
	assert.Equal(t, date(2024, time.January, 1), a.Pre.Start)
	assert.Equal(t, date(2024, time.January, 7), a.Pre.End)
	assert.Equal(t, date(2024, time.January, 15), a.Post.Start)
	assert.Equal(t, date(2024, time.January, 21), a.Post.End)

	for _, w := range []domain.PromoWindow{a.Pre, a.During, a.Post} {
		assert.Equal(t, 7, w.Days)
		assert.Equal(t, 350.0, w.Cost)
	}
	assert.Equal(t, 700.0, a.Pre.Sales)
	assert.Equal(t, 1050.0, a.During.Sales)
	assert.Equal(t, 840.0, a.Post.Sales)
	assert.InDelta(t, 100, a.Pre.AvgDailySales, 1e-9)
	assert.InDelta(t, 15, a.During.AvgDailyUnits, 1e-9)
	assert.InDelta(t, 3, a.During.ROAS, 1e-9)

	assert.InDelta(t, 50, a.DuringChange.Sales, 1e-9)
	assert.InDelta(t, 50, a.DuringChange.ROAS, 1e-9)
	assert.InDelta(t, 0, a.DuringChange.Cost, 1e-9)
	assert.InDelta(t, 20, a.PostChange.Sales, 1e-9)

	require.Len(t, a.Points, 21)
	assert.Equal(t, domain.PeriodPre, a.Points[0].Period)
	assert.Equal(t, domain.PeriodDuring, a.Points[7].Period)
	assert.Equal(t, domain.PeriodPost, a.Points[20].Period)
}

func TestPromoMissingBaseline(t *testing.T) {
	records := dailyRun(date(2024, time.January, 1), 3, 100, 50)
	a := Promo(records, date(2024, time.January, 1), date(2024, time.January, 3))
	require.NotNil(t, a)

	assert.Zero(t, a.Pre.Days)
	assert.Zero(t, a.Pre.AvgDailySales)
	assert.Zero(t, a.Pre.ROAS)
	assert.Equal(t, domain.PromoChange{}, a.DuringChange)
	assert.Equal(t, 3, a.During.Days)
	assert.Zero(t, a.Post.Days)
}

func TestPromoSingleDay(t *testing.T) {
	a := Promo(promoRecords(), date(2024, time.January, 8), date(2024, time.January, 8))
	require.NotNil(t, a)
	assert.Equal(t, 1, a.PromoDays)
	assert.Equal(t, date(2024, time.January, 7), a.Pre.Start)
	assert.Equal(t, 1, a.Pre.Days)
	assert.Equal(t, 1, a.Post.Days)
}

func TestPromoNil(t *testing.T) {
	records := promoRecords()
	assert.Nil(t, Promo(records, time.Time{}, date(2024, time.January, 8)))
	assert.Nil(t, Promo(records, date(2024, time.January, 8), time.Time{}))
	assert.Nil(t, Promo(records, date(2024, time.January, 8), date(2024, time.January, 7)))
	assert.Nil(t, Promo(records, date(2024, time.January, 8), date(2024, time.January, 1)))
}
