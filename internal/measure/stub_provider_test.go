package measure

import (
	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// stubProvider is a small in-memory refdata.Provider for pipeline tests.
// Zero-value fields behave like missing tables: lookups return LookupError.
type stubProvider struct {
	electricity     map[refdata.Region]map[int]float64
	electricityLast int
	naturalGas      map[refdata.Region]float64
	carbonTax       map[int]float64
	carbonTaxLast   int

	// Forced errors, returned ahead of any table lookup when non-nil.
	electricityErr error
	naturalGasErr  error
	carbonTaxErr   error
}

func (s *stubProvider) ElectricityIntensity(region refdata.Region) (map[int]float64, int, error) {
	if s.electricityErr != nil {
		return nil, 0, s.electricityErr
	}
	series, ok := s.electricity[region]
	if !ok {
		return nil, 0, &refdata.LookupError{Table: "electricity_intensity", Key: region.String()}
	}
	out := make(map[int]float64, len(series))
	for year, v := range series {
		out[year] = v
	}
	return out, s.electricityLast, nil
}

func (s *stubProvider) NaturalGasIntensity(region refdata.Region) (float64, error) {
	if s.naturalGasErr != nil {
		return 0, s.naturalGasErr
	}
	intensity, ok := s.naturalGas[region]
	if !ok {
		return 0, &refdata.LookupError{Table: "natural_gas_intensity", Key: region.String()}
	}
	return intensity, nil
}

func (s *stubProvider) CarbonTax() (map[int]float64, int, error) {
	if s.carbonTaxErr != nil {
		return nil, 0, s.carbonTaxErr
	}
	if s.carbonTax == nil {
		return nil, 0, &refdata.LookupError{Table: "carbon_tax", Key: "all"}
	}
	out := make(map[int]float64, len(s.carbonTax))
	for year, v := range s.carbonTax {
		out[year] = v
	}
	return out, s.carbonTaxLast, nil
}

// ontarioStub returns a provider with a small Ontario-only data set used by
// most pipeline tests.
func ontarioStub() *stubProvider {
	return &stubProvider{
		electricity: map[refdata.Region]map[int]float64{
			refdata.RegionON: {2024: 0.03, 2025: 0.04, 2026: 0.05},
		},
		electricityLast: 2026,
		naturalGas: map[refdata.Region]float64{
			refdata.RegionON: 0.18,
		},
		carbonTax:     map[int]float64{2024: 80, 2025: 95, 2026: 110},
		carbonTaxLast: 2026,
	}
}
