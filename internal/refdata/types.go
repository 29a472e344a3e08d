// Package refdata provides read-only lookups over the Canadian reference
// tables used by the measure metrics pipeline: provincial electricity grid
// emissions intensity by year, natural gas combustion intensity, and the
// federal carbon pricing schedule.
package refdata

import "fmt"

// Region identifies a Canadian province or territory in the reference tables.
type Region string

const (
	RegionAB Region = "AB"
	RegionBC Region = "BC"
	RegionMB Region = "MB"
	RegionNB Region = "NB"
	RegionNL Region = "NL"
	RegionNT Region = "NT"
	RegionNS Region = "NS"
	RegionNU Region = "NU"
	RegionON Region = "ON"
	RegionPE Region = "PE"
	RegionQC Region = "QC"
	RegionSK Region = "SK"
	RegionYT Region = "YT"
)

// allRegions lists every valid region code, in table order.
var allRegions = []Region{
	RegionAB, RegionBC, RegionMB, RegionNB, RegionNL, RegionNT, RegionNS,
	RegionNU, RegionON, RegionPE, RegionQC, RegionSK, RegionYT,
}

// Regions returns all valid region codes.
func Regions() []Region {
	out := make([]Region, len(allRegions))
	copy(out, allRegions)
	return out
}

// ParseRegion converts a two-letter provincial or territorial code to a
// Region. It returns an error for codes that have no row in the reference
// tables.
func ParseRegion(s string) (Region, error) {
	for _, r := range allRegions {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region code %q", s)
}

func (r Region) String() string {
	return string(r)
}

// Fuel selects which emissions-intensity series applies to a savings stream.
type Fuel string

const (
	FuelElectricity Fuel = "electricity"
	FuelNaturalGas  Fuel = "natural_gas"
)

// ParseFuel converts a fuel name to a Fuel.
func ParseFuel(s string) (Fuel, error) {
	switch Fuel(s) {
	case FuelElectricity:
		return FuelElectricity, nil
	case FuelNaturalGas:
		return FuelNaturalGas, nil
	}
	return "", fmt.Errorf("unknown fuel %q", s)
}

func (f Fuel) String() string {
	return string(f)
}
