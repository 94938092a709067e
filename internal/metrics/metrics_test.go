package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func family(t *testing.T, c *Collector, name string) *dto.MetricFamily {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestCollector(t *testing.T) {
	c := New()
	c.File(OutcomeStored)
	c.File(OutcomeStored)
	c.File(OutcomeFailed)
	c.Parsed(3*time.Millisecond, 2, 29, 1, 4)
	c.Stored(7)

	files := family(t, c, "campaign_lens_ingested_files_total")
	byOutcome := map[string]float64{}
	for _, m := range files.GetMetric() {
		byOutcome[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"stored": 2, "failed": 1}, byOutcome)

	stored := family(t, c, "campaign_lens_stored_campaigns")
	assert.Equal(t, 7.0, stored.GetMetric()[0].GetGauge().GetValue())

	daily := family(t, c, "campaign_lens_daily_rows")
	assert.Equal(t, uint64(1), daily.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.Equal(t, 29.0, daily.GetMetric()[0].GetHistogram().GetSampleSum())

	dropped := family(t, c, "campaign_lens_dropped_rows_total")
	assert.Len(t, dropped.GetMetric(), 2)
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.File(OutcomeEmpty)
		c.Parsed(time.Second, 1, 1, 0, 0)
		c.Stored(1)
	})
	assert.NotNil(t, c.Handler())
}

func TestHandler(t *testing.T) {
	c := New()
	c.File(OutcomeEmpty)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `campaign_lens_ingested_files_total{outcome="empty"} 1`))
}
