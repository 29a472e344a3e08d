package refdata

import _ "embed"

// Reference tables shipped with the binary. Each file mirrors one of the
// published source tables; see the description field inside each file.

//go:embed data/electricity_intensity.json
var rawElectricityJSON []byte

//go:embed data/natural_gas_intensity.json
var rawNaturalGasJSON []byte

//go:embed data/carbon_tax.json
var rawCarbonTaxJSON []byte
