package sensortype

// units per measurement type; extend as new type values show up in the
// power table.
var units = map[string]string{
	"Active Energy Delivered": "kWh",
	"Active Power":            "kW",
}

// Units maps a measurement type to its display units. Unknown types map to
// the empty string rather than an error.
func Units(measurementType string) string {
	return units[measurementType]
}
