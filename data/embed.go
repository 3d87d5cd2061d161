package data

import _ "embed"

//go:embed units.yaml
var unitsYAML []byte

//go:embed currencies.yaml
var currenciesYAML []byte

//go:embed timezones.yaml
var timezonesYAML []byte
