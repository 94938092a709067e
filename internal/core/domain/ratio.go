package domain

// Ratio returns num/den. A non-positive denominator yields 0 so that no
// derived metric ever carries NaN or Inf.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Percent is Ratio scaled to a percentage.
func Percent(num, den float64) float64 {
	return Ratio(num, den) * 100
}

// Change is the percentage change of current against baseline, 0 when the
// baseline is not positive.
func Change(current, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}
