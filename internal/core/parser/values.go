package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var numberCleaner = strings.NewReplacer("$", "", "%", "", ",", "", " ", "")

// ParseNumber reads a currency, percentage or plain numeric cell. Dollar
// signs, percent signs, thousands separators and whitespace are ignored.
// Empty cells, "-" and anything that is not a decimal number read as 0.
func ParseNumber(s string) float64 {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" || s == "-" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// ParseDate reads M/D/YYYY or YYYY-MM-DD into a UTC midnight. Out-of-range
// day or month values roll over the way a calendar constructor does
// (2/30/2024 is March 1). Any other input yields the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) < 3 {
			return time.Time{}
		}
		month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
