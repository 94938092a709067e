package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"campaign-lens/internal/core/domain"
)

func sampleReport() Report {
	return Report{
		Campaign: domain.Campaign{
			SourceID: "spring.csv",
			Name:     "Spring Push",
			Group:    "Snacks",
			Summary: &domain.Summary{
				StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC),
				Budget:    40000,
				Cost:      12500,
			},
			Offers: []domain.Offer{
				{Name: "NCE", OfferID: "OF-1", CAC: 1.25, IsAcquisitionTactic: true},
				{Name: "Loyal", OfferID: "OF-2", CAC: 1.5, IsBrandBuyerTactic: true},
			},
			Daily: []domain.DailyRecord{
				{Date: "2024-03-01", Sales: 1100, Cost: 380},
				{Date: "2024-03-02", Sales: 1145, Cost: 392},
			},
		},
		Pacing: &domain.PacingMetrics{Status: domain.PacingEarly, ExhaustionUnbounded: true},
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetOffers, SheetDaily, SheetPacing}, f.GetSheetList())

	name, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Spring Push", name)

	start, err := f.GetCellValue(SheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", start)

	offers, err := f.GetRows(SheetOffers)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "Acquisition", offers[1][3])
	assert.Equal(t, "1.25", offers[1][13])
	assert.Equal(t, "Brand Buyer", offers[2][3])
	assert.Equal(t, "n/a", offers[2][13])

	daily, err := f.GetRows(SheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2024-03-02", daily[2][0])
	assert.Equal(t, "1145", daily[2][1])

	pacing, err := f.GetRows(SheetPacing)
	require.NoError(t, err)
	assert.Equal(t, []string{"Status", "Ending Early"}, pacing[0])
	assert.Equal(t, []string{"Projected end date", "never"}, pacing[len(pacing)-1])
}

func TestBuildWithoutPacing(t *testing.T) {
	r := sampleReport()
	r.Pacing = nil
	r.Campaign.Summary = nil

	f, err := Build(r)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetPacing, "A1")
	require.NoError(t, err)
	assert.Contains(t, v, "Pacing unavailable")

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}
