package repository

import (
	"context"
	"time"

	"github.com/jaym93/gtpower/internal/domain"
)

// Order is the timestamp sort direction for a readings query. Ordering is a
// per-endpoint choice (building energy/power queries serve newest first, raw
// sensor series serve oldest first), so it travels with every call instead
// of being baked into the SQL.
type Order int

const (
	OrderAscending Order = iota
	OrderDescending
)

// ReadingsRepository reads the power table. Implementations must return
// empty slices (never errors) for queries that match no rows; the HTTP
// layer decides what absence means.
type ReadingsRepository interface {
	// FindByBuilding matches readings of one measurement type whose
	// source_name contains the zero-padded building code (substring
	// containment, not a join: the schema has no referential integrity
	// between readings and buildings).
	FindByBuilding(ctx context.Context, measurementType, buildingCode string, start, stop time.Time, order Order) ([]*domain.Reading, error)

	// FindBySource matches readings by exact source name. The stored raw
	// column carries a trailing carriage return; implementations append it
	// here, at the storage boundary, so callers never deal with it.
	FindBySource(ctx context.Context, sensorID string, start, stop time.Time) ([]*domain.Reading, error)
}

// SensorsRepository reads the sensors metadata table.
type SensorsRepository interface {
	// GetSensor returns the metadata row for sensorID, or an error wrapping
	// domain.ErrNotFound.
	GetSensor(ctx context.Context, sensorID string) (*domain.Sensor, error)
}
