package refdata

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// MaxReferenceYear caps how far the known reference data is trusted. Table
// years beyond the cap are ignored when computing the last known year.
const MaxReferenceYear = 2050

// Provider is the read-only lookup seam between the calculation pipeline and
// the reference data storage.
type Provider interface {
	// ElectricityIntensity returns the year-to-intensity series (kgCO2e/kWh)
	// for a region's electricity grid, plus the last known year of the series
	// (capped at MaxReferenceYear).
	ElectricityIntensity(region Region) (map[int]float64, int, error)

	// NaturalGasIntensity returns the constant combustion intensity
	// (kgCO2e/kWh) for natural gas in a region. The value applies to all
	// years, so there is no cap year.
	NaturalGasIntensity(region Region) (float64, error)

	// CarbonTax returns the year-to-rate table ($/tCO2e) for the federal
	// carbon pricing schedule, plus the last known year of the table (capped
	// at MaxReferenceYear).
	CarbonTax() (map[int]float64, int, error)
}

// Client implements Provider over the embedded JSON reference tables.
type Client struct {
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	// In-memory indexes (built on first access)
	electricity     map[Region]map[int]float64
	electricityLast int
	naturalGas      map[Region]float64
	carbonTax       map[int]float64
	carbonTaxLast   int
}

// electricityTable is the on-disk shape of the electricity intensity file:
// region code -> year (as string) -> kgCO2e/kWh.
type electricityTable struct {
	Units   string                        `json:"units"`
	Regions map[string]map[string]float64 `json:"regions"`
}

// naturalGasTable is the on-disk shape of the natural gas intensity file:
// region code -> kgCO2e/kWh, constant across years.
type naturalGasTable struct {
	Units   string             `json:"units"`
	Regions map[string]float64 `json:"regions"`
}

// carbonTaxTable is the on-disk shape of the carbon tax file:
// year (as string) -> $/tCO2e.
type carbonTaxTable struct {
	Currency      string             `json:"currency"`
	DollarsPerTon map[string]float64 `json:"dollars_per_ton"`
}

// NewClient creates a Client over the embedded reference tables. The provided
// logger is attached to the client and used for load diagnostics. It returns
// a non-nil error if any embedded table fails to parse.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses the embedded tables exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		var elec electricityTable
		if err := json.Unmarshal(rawElectricityJSON, &elec); err != nil {
			c.err = fmt.Errorf("failed to parse electricity intensity data: %w", err)
			return
		}

		c.electricity = make(map[Region]map[int]float64, len(elec.Regions))
		for code, series := range elec.Regions {
			byYear := make(map[int]float64, len(series))
			for yearStr, intensity := range series {
				year, err := strconv.Atoi(yearStr)
				if err != nil {
					c.err = fmt.Errorf("electricity intensity: bad year key %q for region %s: %w", yearStr, code, err)
					return
				}
				byYear[year] = intensity
				if year <= MaxReferenceYear && year > c.electricityLast {
					c.electricityLast = year
				}
			}
			c.electricity[Region(code)] = byYear
		}

		var gas naturalGasTable
		if err := json.Unmarshal(rawNaturalGasJSON, &gas); err != nil {
			c.err = fmt.Errorf("failed to parse natural gas intensity data: %w", err)
			return
		}
		c.naturalGas = make(map[Region]float64, len(gas.Regions))
		for code, intensity := range gas.Regions {
			c.naturalGas[Region(code)] = intensity
		}

		var tax carbonTaxTable
		if err := json.Unmarshal(rawCarbonTaxJSON, &tax); err != nil {
			c.err = fmt.Errorf("failed to parse carbon tax data: %w", err)
			return
		}
		c.carbonTax = make(map[int]float64, len(tax.DollarsPerTon))
		for yearStr, rate := range tax.DollarsPerTon {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				c.err = fmt.Errorf("carbon tax: bad year key %q: %w", yearStr, err)
				return
			}
			c.carbonTax[year] = rate
			if year <= MaxReferenceYear && year > c.carbonTaxLast {
				c.carbonTaxLast = year
			}
		}

		c.logger.Debug().
			Int("electricity_regions", len(c.electricity)).
			Int("electricity_last_year", c.electricityLast).
			Int("natural_gas_regions", len(c.naturalGas)).
			Int("carbon_tax_years", len(c.carbonTax)).
			Int("carbon_tax_last_year", c.carbonTaxLast).
			Msg("reference tables loaded")
	})
	return c.err
}

// ElectricityIntensity returns a copy of the grid intensity series for the
// region, so callers may extend it without corrupting the cached table.
func (c *Client) ElectricityIntensity(region Region) (map[int]float64, int, error) {
	if err := c.init(); err != nil {
		return nil, 0, err
	}

	series, ok := c.electricity[region]
	if !ok {
		return nil, 0, &LookupError{Table: "electricity_intensity", Key: region.String()}
	}

	out := make(map[int]float64, len(series))
	for year, intensity := range series {
		out[year] = intensity
	}
	return out, c.electricityLast, nil
}

// NaturalGasIntensity returns the constant combustion intensity for the region.
func (c *Client) NaturalGasIntensity(region Region) (float64, error) {
	if err := c.init(); err != nil {
		return 0, err
	}

	intensity, ok := c.naturalGas[region]
	if !ok {
		return 0, &LookupError{Table: "natural_gas_intensity", Key: region.String()}
	}
	return intensity, nil
}

// CarbonTax returns a copy of the carbon pricing schedule.
func (c *Client) CarbonTax() (map[int]float64, int, error) {
	if err := c.init(); err != nil {
		return nil, 0, err
	}

	out := make(map[int]float64, len(c.carbonTax))
	for year, rate := range c.carbonTax {
		out[year] = rate
	}
	return out, c.carbonTaxLast, nil
}

// Years returns the sorted years present in a year-keyed table. Useful for
// diagnostics and tests.
func Years(table map[int]float64) []int {
	years := make([]int, 0, len(table))
	for year := range table {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
