package measure

import "math"

// IncrementalCost is the cost delta between the measure and its like-for-like
// baseline replacement, escalated from the present year to the implementation
// year at the consumer price index. It is negative when the efficient
// replacement is cheaper than the baseline.
func IncrementalCost(measureCost, likeForLikeCost, consumerPriceIndex float64, implementationYear, presentYear int) float64 {
	factor := math.Pow(1+consumerPriceIndex, float64(implementationYear-presentYear))
	return (measureCost - likeForLikeCost) * factor
}

// IncrementalNPV discounts the measure's cash flows to present value: the
// incremental cost as a period-0 outflow, followed by one total savings
// inflow per year of the measure life, each discounted by its period count.
// The result is rounded to cents.
func IncrementalNPV(incrementalCost float64, yearlySavings []float64, discountRate float64) float64 {
	npv := -incrementalCost
	for i, savings := range yearlySavings {
		npv += savings / math.Pow(1+discountRate, float64(i+1))
	}
	return round2(npv)
}

// IncrementalROI normalizes NPV by the incremental cost escalated once more
// to the implementation year. When that denominator is exactly zero the
// result is +/-Inf or NaN under IEEE 754 division; the degenerate value is
// returned as-is for callers to detect.
func IncrementalROI(npv, incrementalCost, consumerPriceIndex float64, implementationYear, presentYear int) float64 {
	factor := math.Pow(1+consumerPriceIndex, float64(implementationYear-presentYear))
	return npv / (incrementalCost * factor)
}

// IncrementalMAC is the marginal abatement cost in $/tCO2e: the negated NPV
// per tonne of lifetime carbon savings. Zero lifetime savings produce +/-Inf
// or NaN, returned as-is.
func IncrementalMAC(npv, totalCarbonSavings float64) float64 {
	return -npv / totalCarbonSavings
}
