package domain

import "time"

// Measurement types stored in the power table's type column.
const (
	MeasurementEnergy = "Active Energy Delivered"
	MeasurementPower  = "Active Power"
)

// Reading is one immutable fact row from the power table. Rows are written
// by an external ingestion process and never mutated by this service.
//
// ValueRead is kept as the database's decimal text to preserve precision;
// it is never routed through float64.
//
// SourceName is the raw stored value, including the trailing carriage
// return the ingestion process leaves on it. Stripping happens once, in the
// sensortype decoder, when rows are projected out.
type Reading struct {
	Timestamp       time.Time
	MeasurementType string
	ValueRead       string
	SourceName      string
}
