package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/measure"
)

// Config holds command-line settings: the scenario file to evaluate, the
// output format, and the log level.
type Config struct {
	ScenarioPath string
	JSONOutput   bool
	LogLevel     string
}

func parseConfig(args []string) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet("measure-metrics", flag.ContinueOnError)
	fs.StringVar(&config.ScenarioPath, "scenario", "", "Path to the YAML scenario file (required)")
	fs.BoolVar(&config.JSONOutput, "json", false, "Emit the metrics record as JSON instead of the text report")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if config.ScenarioPath == "" {
		return nil, fmt.Errorf("-scenario is required")
	}
	return config, nil
}

// scenario is the YAML shape of one measure evaluation. Field names mirror
// the metrics inputs; rates are fractional (0.02 means 2%).
type scenario struct {
	PresentYear        int     `yaml:"present_year"`
	GrossFloorArea     float64 `yaml:"gross_floor_area"`
	GrossFloorAreaUnit string  `yaml:"gross_floor_area_unit"`
	Region             string  `yaml:"region"`

	ElectricityKWhRate       float64 `yaml:"electricity_kwh_rate"`
	NaturalGasKWhRate        float64 `yaml:"natural_gas_kwh_rate"`
	UtilityRateReferenceYear int     `yaml:"utility_rate_reference_year"`

	DiscountRate         float64 `yaml:"discount_rate"`
	ConsumerPriceIndex   float64 `yaml:"consumer_price_index"`
	ElectricityInflation float64 `yaml:"electricity_inflation"`
	NaturalGasInflation  float64 `yaml:"natural_gas_inflation"`

	LikeForLikeCost       float64 `yaml:"like_for_like_cost"`
	MeasureCost           float64 `yaml:"measure_cost"`
	ImplementationYear    int     `yaml:"implementation_year"`
	MeasureLife           int     `yaml:"measure_life"`
	ElectricityKWhSavings float64 `yaml:"electricity_kwh_savings"`
	NaturalGasKWhSavings  float64 `yaml:"natural_gas_kwh_savings"`
}

// loadScenario reads and validates a scenario file into calculation inputs.
func loadScenario(path string) (measure.Inputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return measure.Inputs{}, fmt.Errorf("reading scenario file: %w", err)
	}

	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return measure.Inputs{}, fmt.Errorf("parsing scenario file: %w", err)
	}
	return s.toInputs()
}

func (s scenario) toInputs() (measure.Inputs, error) {
	unit, err := measure.ParseAreaUnit(s.GrossFloorAreaUnit)
	if err != nil {
		return measure.Inputs{}, err
	}
	if s.MeasureLife < 0 {
		return measure.Inputs{}, fmt.Errorf("measure_life must not be negative, got %d", s.MeasureLife)
	}
	if s.GrossFloorArea <= 0 {
		return measure.Inputs{}, fmt.Errorf("gross_floor_area must be positive, got %g", s.GrossFloorArea)
	}

	return measure.Inputs{
		PresentYear:           s.PresentYear,
		GrossFloorArea:        s.GrossFloorArea,
		GrossFloorAreaUnit:    unit,
		Region:                s.Region,
		ElectricityRate:       s.ElectricityKWhRate,
		NaturalGasRate:        s.NaturalGasKWhRate,
		RateReferenceYear:     s.UtilityRateReferenceYear,
		DiscountRate:          s.DiscountRate,
		ConsumerPriceIndex:    s.ConsumerPriceIndex,
		ElectricityInflation:  s.ElectricityInflation,
		NaturalGasInflation:   s.NaturalGasInflation,
		LikeForLikeCost:       s.LikeForLikeCost,
		MeasureCost:           s.MeasureCost,
		ImplementationYear:    s.ImplementationYear,
		MeasureLife:           s.MeasureLife,
		ElectricityKWhSavings: s.ElectricityKWhSavings,
		NaturalGasKWhSavings:  s.NaturalGasKWhSavings,
	}, nil
}
