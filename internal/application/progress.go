// internal/application/progress.go
package application

import "math"

// ProgressPercent returns the share of goal already raised as a whole
// percentage in [0,100]. Missing or non-positive goals count as no progress.
func ProgressPercent(raised, goal *float64) int {
	if raised == nil || goal == nil || *goal <= 0 {
		return 0
	}
	pct := *raised / *goal * 100
	if math.IsNaN(pct) {
		return 0
	}
	pct = math.Max(0, math.Min(100, pct))
	return int(math.Trunc(pct))
}

func amount(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
