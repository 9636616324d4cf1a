// Package data holds canned provider responses used in mock mode.
package data

import _ "embed"

//go:embed flights.json
var FlightsData []byte

//go:embed airports.json
var AirportsData []byte
