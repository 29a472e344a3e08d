package measure

import (
	"math"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// CarbonTaxSavings converts a natural gas carbon savings sequence into yearly
// carbon tax savings in dollars, one value per year starting at the
// implementation year.
//
// Years inside the carbon pricing schedule use the table rate verbatim. Years
// beyond the last known year extrapolate by compounding the last known rate
// at the consumer price index:
//
//	rate(y) = rate(last) * (1+cpi)^(y-last)
//
// so the rate is defined for every projected year. Each value is rounded to
// cents.
func CarbonTaxSavings(provider refdata.Provider, gasCarbonSavings []float64, implementationYear int, consumerPriceIndex float64) ([]float64, error) {
	taxRates, lastYear, err := provider.CarbonTax()
	if err != nil {
		return nil, err
	}

	savings := make([]float64, 0, len(gasCarbonSavings))
	for i, carbonSaved := range gasCarbonSavings {
		year := implementationYear + i
		rate, ok := taxRates[year]
		if !ok {
			rate = taxRates[lastYear] * math.Pow(1+consumerPriceIndex, float64(year-lastYear))
		}
		savings = append(savings, round2(carbonSaved*rate))
	}
	return savings, nil
}
