package utils

import "math"

// RoundFloat rounds a float64 to a specified number of decimal places.
// math.Round rounds half away from zero, so monetary values use half-up
// rounding; this only happens at the output boundary, never while
// accumulating.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// MinInt returns the smaller of two integers.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
