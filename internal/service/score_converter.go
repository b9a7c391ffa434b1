package service

import "math"

// Percentage expresses score as a share of total, rounded to two decimals.
// An empty pool scores 0.
func Percentage(score, total int) float64 {
	if total <= 0 || score <= 0 {
		return 0
	}
	if score >= total {
		return 100
	}
	return math.Round(float64(score)/float64(total)*10000) / 100
}
