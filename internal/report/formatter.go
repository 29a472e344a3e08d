// Package report renders a measure metrics record for humans or machines.
// Formatting is presentation-only; it never changes the calculated values
// beyond display rounding.
package report

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/instanceofedgar/MeasureMetricsCalculatorCAN/internal/measure"
)

// printer formats numbers with English thousands separators.
var printer = message.NewPrinter(language.English)

// Text renders the nine report lines. Dollar averages are rounded to the
// nearest $10; NPV and MAC to whole dollars; ROI as a percentage with one
// decimal; intensity with three decimals.
func Text(m measure.Metrics) string {
	var b strings.Builder

	printer.Fprintf(&b, "Average Emissions Intensity Reduction (kgCO₂e/ft²): %.3f\n", m.AvgEmissionsIntensityReduction)
	printer.Fprintf(&b, "Average Annual Electricity Carbon Savings (tCO₂e): %.2f\n", m.AvgElectricityCarbonSavings)
	printer.Fprintf(&b, "Average Annual Natural Gas Carbon Savings (tCO₂e): %.2f\n", m.AvgNaturalGasCarbonSavings)
	printer.Fprintf(&b, "Average Annual Carbon Tax Savings: $%.0f\n", roundToTens(m.AvgCarbonTaxSavings))
	printer.Fprintf(&b, "Average Annual Electricity Cost Savings: $%.0f\n", roundToTens(m.AvgElectricityCostSavings))
	printer.Fprintf(&b, "Average Annual Natural Gas Cost Savings: $%.0f\n", roundToTens(m.AvgNaturalGasCostSavings))
	printer.Fprintf(&b, "Incremental NPV: $%.0f\n", m.IncrementalNPV)
	printer.Fprintf(&b, "Incremental ROI: %.1f%%\n", m.IncrementalROI*100)
	printer.Fprintf(&b, "Incremental MAC: $%.0f/tCO₂e\n", m.IncrementalMAC)

	return b.String()
}

// JSON renders the metrics record as indented JSON using the record's
// canonical field names. Degenerate ROI or MAC values (NaN, ±Inf) have no
// JSON representation and yield an error.
func JSON(m measure.Metrics) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// roundToTens rounds a dollar amount to the nearest $10. The averages passed
// here are means of finite cent-rounded streams, so the value is always
// finite.
func roundToTens(v float64) float64 {
	return decimal.NewFromFloat(v).Round(-1).InexactFloat64()
}
