package measure

import (
	"math"
	"strconv"
)

// round2 rounds to 2 decimal places. Dollar amounts in the yearly savings
// streams are kept at cent precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// mean returns the arithmetic mean of values, or 0 for an empty slice. A
// zero-length measure life must produce 0 averages, not a division by zero.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// strconvYear formats a year for lookup error keys.
func strconvYear(year int) string {
	return strconv.Itoa(year)
}
