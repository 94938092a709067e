// Package analytics derives pacing, promo lift, conversion and portfolio
// metrics from a parsed campaign. Every function is pure: the reference
// date is always passed in, and insufficient data yields nil, never an
// error.
package analytics

import (
	"math"
	"time"
)

const hoursPerDay = 24

// daysBetween is the signed number of days from a to b, rounded to the
// nearest whole day.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / hoursPerDay))
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func isoDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
