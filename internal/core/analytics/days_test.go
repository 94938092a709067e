package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	start := date(2024, time.January, 1)
	assert.Equal(t, 90, daysBetween(start, date(2024, time.March, 31)))
	assert.Equal(t, -90, daysBetween(date(2024, time.March, 31), start))
	assert.Equal(t, 0, daysBetween(start, start))
	assert.Equal(t, 1, daysBetween(start, start.Add(13*time.Hour)))
	assert.Equal(t, 0, daysBetween(start, start.Add(11*time.Hour)))
	assert.Equal(t, 45, daysBetween(start, addDays(start, 45)))
	assert.Equal(t, "2024-02-15", isoDate(addDays(start, 45)))
}
