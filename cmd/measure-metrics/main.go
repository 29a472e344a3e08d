package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/measure"
	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/refdata"
	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/report"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "measure-metrics: %v\n", err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "measure-metrics: invalid log level %q\n", config.LogLevel)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	inputs, err := loadScenario(config.ScenarioPath)
	if err != nil {
		logger.Error().Err(err).Str("scenario", config.ScenarioPath).Msg("failed to load scenario")
		os.Exit(1)
	}

	client, err := refdata.NewClient(logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load reference tables")
		os.Exit(1)
	}

	calculator := measure.NewCalculator(client, logger)
	metrics, err := calculator.Calculate(inputs)
	if err != nil {
		logger.Error().Err(err).Msg("calculation failed")
		os.Exit(1)
	}

	if config.JSONOutput {
		data, err := report.JSON(metrics)
		if err != nil {
			logger.Error().Err(err).Msg("failed to encode metrics")
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Print(report.Text(metrics))
}
