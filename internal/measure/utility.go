package measure

import (
	"math"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// FutureRate escalates a reference-year utility rate to the target year.
//
// The exponent is (targetYear - referenceYear - 1): the reference-year rate
// is treated as already effective for the first full billing year, so one
// year of escalation is pre-applied by convention. A target year equal to
// referenceYear+1 therefore returns the rate unchanged.
func FutureRate(rate, inflation float64, referenceYear, targetYear int) float64 {
	yearsDelta := targetYear - referenceYear
	return rate * math.Pow(1+inflation, float64(yearsDelta-1))
}

// UtilitySavings projects the yearly cost savings in dollars for one utility
// over the measure life, starting at the implementation year. Each value is
// kWhSavings times the escalated rate for that year, rounded to cents.
func UtilitySavings(kWhSavings, rate, inflation float64, referenceYear, measureLife, implementationYear int) []float64 {
	savings := make([]float64, 0, max(measureLife, 0))
	for year := implementationYear; year < implementationYear+measureLife; year++ {
		futureRate := FutureRate(rate, inflation, referenceYear, year)
		savings = append(savings, round2(kWhSavings*futureRate))
	}
	return savings
}

// NaturalGasBaseRate strips the carbon tax component embedded in a nominal
// natural gas rate:
//
//	base = nominal - intensity * taxRate(referenceYear) / 1000
//
// If the tax rate or the gas intensity cannot be resolved for the reference
// year and region, the nominal rate is returned unchanged: the carbon tax
// component is treated as absent. This is the single place in the pipeline
// where a lookup failure is deliberately suppressed.
func NaturalGasBaseRate(provider refdata.Provider, region refdata.Region, nominalRate float64, referenceYear int) float64 {
	component, err := naturalGasTaxComponent(provider, region, referenceYear)
	if err != nil {
		return nominalRate
	}
	return nominalRate - component
}

// naturalGasTaxComponent computes the per-kWh carbon tax embedded in a
// natural gas rate at the reference year.
func naturalGasTaxComponent(provider refdata.Provider, region refdata.Region, referenceYear int) (float64, error) {
	taxRates, _, err := provider.CarbonTax()
	if err != nil {
		return 0, err
	}
	taxRate, ok := taxRates[referenceYear]
	if !ok {
		return 0, &refdata.LookupError{Table: "carbon_tax", Key: strconvYear(referenceYear)}
	}

	intensity, err := provider.NaturalGasIntensity(region)
	if err != nil {
		return 0, err
	}
	return intensity * taxRate / 1000, nil
}
