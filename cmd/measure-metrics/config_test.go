package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/measure"
)

func TestParseConfig(t *testing.T) {
	config, err := parseConfig([]string{"-scenario", "s.yaml", "-json", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "s.yaml", config.ScenarioPath)
	assert.True(t, config.JSONOutput)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParseConfig_ScenarioRequired(t *testing.T) {
	_, err := parseConfig(nil)
	assert.Error(t, err)
}

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const validScenario = `
present_year: 2024
gross_floor_area: 85000
gross_floor_area_unit: ft2
region: ON
electricity_kwh_rate: 0.13
natural_gas_kwh_rate: 0.045
utility_rate_reference_year: 2023
discount_rate: 0.06
consumer_price_index: 0.02
electricity_inflation: 0.03
natural_gas_inflation: 0.025
like_for_like_cost: 140000
measure_cost: 210000
implementation_year: 2025
measure_life: 20
electricity_kwh_savings: 35000
natural_gas_kwh_savings: 420000
`

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, validScenario)

	inputs, err := loadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "ON", inputs.Region)
	assert.Equal(t, measure.SquareFeet, inputs.GrossFloorAreaUnit)
	assert.Equal(t, 2025, inputs.ImplementationYear)
	assert.Equal(t, 20, inputs.MeasureLife)
	assert.InDelta(t, 0.045, inputs.NaturalGasRate, 1e-12)
	assert.InDelta(t, 420000, inputs.NaturalGasKWhSavings, 1e-9)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		scenario string
	}{
		{"bad area unit", "gross_floor_area: 100\ngross_floor_area_unit: acres\nregion: ON\nmeasure_life: 5\n"},
		{"negative measure life", "gross_floor_area: 100\ngross_floor_area_unit: ft2\nregion: ON\nmeasure_life: -1\n"},
		{"zero floor area", "gross_floor_area: 0\ngross_floor_area_unit: ft2\nregion: ON\nmeasure_life: 5\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadScenario(writeScenario(t, tt.scenario))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
