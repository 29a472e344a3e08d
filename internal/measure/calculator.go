package measure

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// Calculator composes the projection and financial components into the full
// metrics pipeline. Each Calculate call is independent and side-effect-free
// apart from reading the reference tables, so a single Calculator is safe to
// share across calculations.
type Calculator struct {
	provider refdata.Provider
	logger   zerolog.Logger
}

// NewCalculator creates a Calculator over the given reference data provider.
func NewCalculator(provider refdata.Provider, logger zerolog.Logger) *Calculator {
	return &Calculator{provider: provider, logger: logger}
}

// Calculate runs the full pipeline for one measure and assembles the summary
// record. Any reference lookup failure (other than the natural gas base rate
// fallback) aborts the whole calculation; there is no partial-result mode.
func (c *Calculator) Calculate(in Inputs) (Metrics, error) {
	region, err := refdata.ParseRegion(in.Region)
	if err != nil {
		return Metrics{}, err
	}

	// Yearly carbon savings per fuel, in tCO2e.
	electricityCarbon, err := CarbonSavings(c.provider, region, refdata.FuelElectricity,
		in.ElectricityKWhSavings, in.MeasureLife, in.ImplementationYear)
	if err != nil {
		return Metrics{}, fmt.Errorf("electricity carbon savings: %w", err)
	}
	naturalGasCarbon, err := CarbonSavings(c.provider, region, refdata.FuelNaturalGas,
		in.NaturalGasKWhSavings, in.MeasureLife, in.ImplementationYear)
	if err != nil {
		return Metrics{}, fmt.Errorf("natural gas carbon savings: %w", err)
	}

	// Carbon tax savings follow the natural gas stream only; electricity is
	// not subject to the fuel charge.
	carbonTax, err := CarbonTaxSavings(c.provider, naturalGasCarbon, in.ImplementationYear, in.ConsumerPriceIndex)
	if err != nil {
		return Metrics{}, fmt.Errorf("carbon tax savings: %w", err)
	}

	// Utility cost savings. The natural gas rate is reduced to its base
	// component first so the carbon tax is not counted twice.
	electricityCost := UtilitySavings(in.ElectricityKWhSavings, in.ElectricityRate,
		in.ElectricityInflation, in.RateReferenceYear, in.MeasureLife, in.ImplementationYear)

	gasBaseRate := NaturalGasBaseRate(c.provider, region, in.NaturalGasRate, in.RateReferenceYear)
	naturalGasCost := UtilitySavings(in.NaturalGasKWhSavings, gasBaseRate,
		in.NaturalGasInflation, in.RateReferenceYear, in.MeasureLife, in.ImplementationYear)

	// Total dollar savings per year across all three streams. All streams
	// have one entry per year of the measure life.
	totalSavings := make([]float64, len(carbonTax))
	for i := range totalSavings {
		totalSavings[i] = carbonTax[i] + electricityCost[i] + naturalGasCost[i]
	}

	incrementalCost := IncrementalCost(in.MeasureCost, in.LikeForLikeCost,
		in.ConsumerPriceIndex, in.ImplementationYear, in.PresentYear)
	npv := IncrementalNPV(incrementalCost, totalSavings, in.DiscountRate)

	avgElectricityCarbon := mean(electricityCarbon)
	avgNaturalGasCarbon := mean(naturalGasCarbon)
	totalCarbon := float64(in.MeasureLife) * (avgElectricityCarbon + avgNaturalGasCarbon)

	roi := IncrementalROI(npv, incrementalCost, in.ConsumerPriceIndex, in.ImplementationYear, in.PresentYear)
	mac := IncrementalMAC(npv, totalCarbon)

	// Intensity reduction is reported per square foot per year.
	intensityReduction := 1000 * totalCarbon / float64(in.MeasureLife) / in.GrossFloorArea
	if in.GrossFloorAreaUnit != SquareFeet {
		intensityReduction *= SquareFeetPerSquareMeter
	}

	metrics := Metrics{
		AvgEmissionsIntensityReduction: intensityReduction,
		AvgElectricityCarbonSavings:    avgElectricityCarbon,
		AvgNaturalGasCarbonSavings:     avgNaturalGasCarbon,
		AvgCarbonTaxSavings:            mean(carbonTax),
		AvgElectricityCostSavings:      mean(electricityCost),
		AvgNaturalGasCostSavings:       mean(naturalGasCost),
		IncrementalNPV:                 npv,
		IncrementalROI:                 roi,
		IncrementalMAC:                 mac,
	}

	c.logger.Debug().
		Str("region", region.String()).
		Int("implementation_year", in.ImplementationYear).
		Int("measure_life", in.MeasureLife).
		Float64("incremental_cost", incrementalCost).
		Float64("npv", npv).
		Msg("measure metrics calculated")

	return metrics, nil
}
