// Package measure computes financial and carbon savings metrics for a single
// energy-efficiency retrofit measure in a Canadian building. It projects
// yearly savings streams over the measure's operational life, discounts them
// to present value, and derives NPV, ROI, marginal abatement cost, and the
// emissions-intensity reduction.
package measure

import "fmt"

// AreaUnit is the unit the gross floor area is reported in. Intensity
// reduction is always reported per square foot, so square-meter areas are
// converted with SquareFeetPerSquareMeter.
type AreaUnit string

const (
	SquareMeters AreaUnit = "m2"
	SquareFeet   AreaUnit = "ft2"
)

// SquareFeetPerSquareMeter converts a per-m2 basis to a per-ft2 basis.
const SquareFeetPerSquareMeter = 10.7639

// ParseAreaUnit converts a unit label to an AreaUnit. Both the ASCII and the
// superscript spellings are accepted.
func ParseAreaUnit(s string) (AreaUnit, error) {
	switch s {
	case "m2", "m²":
		return SquareMeters, nil
	case "ft2", "ft²":
		return SquareFeet, nil
	}
	return "", fmt.Errorf("unknown area unit %q", s)
}

func (u AreaUnit) String() string {
	return string(u)
}

// Inputs describes one retrofit measure and the building and financial
// context it is evaluated in. All monetary values are in dollars; rates are
// fractional (0.02 means 2%).
type Inputs struct {
	// General building inputs
	PresentYear        int
	GrossFloorArea     float64
	GrossFloorAreaUnit AreaUnit
	Region             string // two-letter provincial or territorial code

	// Utility rates, effective at RateReferenceYear
	ElectricityRate   float64 // $/kWh
	NaturalGasRate    float64 // $/kWh, nominal (may embed a carbon tax component)
	RateReferenceYear int

	// Financial scalars
	DiscountRate         float64
	ConsumerPriceIndex   float64
	ElectricityInflation float64
	NaturalGasInflation  float64

	// Measure inputs
	LikeForLikeCost       float64
	MeasureCost           float64
	ImplementationYear    int
	MeasureLife           int
	ElectricityKWhSavings float64
	NaturalGasKWhSavings  float64
}

// Metrics is the summary record for one measure calculation. Constructed
// once and immutable; the JSON field names are the report's canonical keys.
type Metrics struct {
	// AvgEmissionsIntensityReduction is in kgCO2e per square foot per year.
	AvgEmissionsIntensityReduction float64 `json:"avg_emissions_intensity_reduction"`

	// Average annual carbon savings per fuel, in tCO2e.
	AvgElectricityCarbonSavings float64 `json:"avg_electricity_carbon_savings"`
	AvgNaturalGasCarbonSavings  float64 `json:"avg_natural_gas_carbon_savings"`

	// Average annual dollar savings streams.
	AvgCarbonTaxSavings       float64 `json:"avg_carbon_tax_savings"`
	AvgElectricityCostSavings float64 `json:"avg_electricity_cost_savings"`
	AvgNaturalGasCostSavings  float64 `json:"avg_natural_gas_cost_savings"`

	// IncrementalNPV is the discounted value of all savings net of the
	// incremental cost. IncrementalROI and IncrementalMAC may be infinite or
	// NaN when their denominators are zero; callers that need bounded output
	// must check.
	IncrementalNPV float64 `json:"incremental_npv"`
	IncrementalROI float64 `json:"incremental_roi"`
	IncrementalMAC float64 `json:"incremental_mac"`
}
