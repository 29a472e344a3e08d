package measure

import (
	"fmt"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// CarbonSavings projects the yearly carbon savings in tCO2e for one fuel over
// the measure life, starting at the implementation year.
//
// Electricity savings follow the regional grid intensity series; years beyond
// the last known table year reuse the last known intensity (clamp-high, no
// further decay modeled). Natural gas intensity is a single constant, so the
// savings are identical every year.
//
// A zero measure life yields an empty sequence. Lookup failures propagate.
func CarbonSavings(provider refdata.Provider, region refdata.Region, fuel refdata.Fuel, kWhSavings float64, measureLife, implementationYear int) ([]float64, error) {
	switch fuel {
	case refdata.FuelElectricity:
		intensity, lastYear, err := provider.ElectricityIntensity(region)
		if err != nil {
			return nil, err
		}

		savings := make([]float64, 0, max(measureLife, 0))
		for year := implementationYear; year < implementationYear+measureLife; year++ {
			v, ok := intensity[year]
			if !ok {
				v = intensity[lastYear]
			}
			savings = append(savings, kWhSavings*v/1000)
		}
		return savings, nil

	case refdata.FuelNaturalGas:
		intensity, err := provider.NaturalGasIntensity(region)
		if err != nil {
			return nil, err
		}

		savings := make([]float64, 0, max(measureLife, 0))
		for year := implementationYear; year < implementationYear+measureLife; year++ {
			savings = append(savings, kWhSavings*intensity/1000)
		}
		return savings, nil
	}

	return nil, fmt.Errorf("unknown fuel %q", fuel)
}
