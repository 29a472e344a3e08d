package measure

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
)

// TestCalculator_EmbeddedTables runs the full pipeline against the shipped
// reference tables for every region and checks structural invariants rather
// than pinned values: the data files are updated independently of the code.
func TestCalculator_EmbeddedTables(t *testing.T) {
	client, err := refdata.NewClient(zerolog.Nop())
	require.NoError(t, err)
	calc := NewCalculator(client, zerolog.Nop())

	for _, region := range refdata.Regions() {
		t.Run(region.String(), func(t *testing.T) {
			in := testInputs()
			in.Region = region.String()

			m, err := calc.Calculate(in)
			require.NoError(t, err)

			// Positive kWh savings must yield positive carbon and cost savings.
			assert.Greater(t, m.AvgElectricityCarbonSavings, 0.0)
			assert.Greater(t, m.AvgNaturalGasCarbonSavings, 0.0)
			assert.Greater(t, m.AvgCarbonTaxSavings, 0.0)
			assert.Greater(t, m.AvgElectricityCostSavings, 0.0)
			assert.Greater(t, m.AvgEmissionsIntensityReduction, 0.0)
		})
	}
}

// TestCalculator_EmbeddedTables_LongLife projects far past the known data to
// exercise both extrapolation policies at once: the clamped grid intensity
// and the compounding carbon tax.
func TestCalculator_EmbeddedTables_LongLife(t *testing.T) {
	client, err := refdata.NewClient(zerolog.Nop())
	require.NoError(t, err)

	const life = 40
	gasCarbon, err := CarbonSavings(client, refdata.RegionON, refdata.FuelNaturalGas, 100000, life, 2025)
	require.NoError(t, err)
	require.Len(t, gasCarbon, life)

	elecCarbon, err := CarbonSavings(client, refdata.RegionON, refdata.FuelElectricity, 100000, life, 2025)
	require.NoError(t, err)
	require.Len(t, elecCarbon, life)

	// Beyond the intensity table the clamped values are constant.
	last := elecCarbon[life-1]
	assert.InDelta(t, last, elecCarbon[life-2], 1e-12)

	// Beyond the tax schedule the savings keep growing with a positive CPI.
	tax, err := CarbonTaxSavings(client, gasCarbon, 2025, 0.02)
	require.NoError(t, err)
	require.Len(t, tax, life)
	assert.Greater(t, tax[life-1], tax[life-2])
}
