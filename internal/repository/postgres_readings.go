package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jaym93/gtpower/internal/domain"
)

// PostgresReadingsRepository reads the power table.
type PostgresReadingsRepository struct {
	db *sql.DB
}

func NewPostgresReadingsRepository(db *sql.DB) *PostgresReadingsRepository {
	return &PostgresReadingsRepository{db: db}
}

var _ ReadingsRepository = (*PostgresReadingsRepository)(nil)

// FindByBuilding matches readings by measurement type and building-code
// substring within the given time window.
func (r *PostgresReadingsRepository) FindByBuilding(ctx context.Context, measurementType, buildingCode string, start, stop time.Time, order Order) ([]*domain.Reading, error) {
	direction := "ASC"
	if order == OrderDescending {
		direction = "DESC"
	}

	query := `
		SELECT timestamp, type, value_read::text, source_name
		FROM power
		WHERE type = $1
		  AND source_name LIKE $2
		  AND timestamp BETWEEN $3 AND $4
		ORDER BY timestamp ` + direction

	rows, err := r.db.QueryContext(ctx, query, measurementType, "%B"+buildingCode+"%", start, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings by building: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// FindBySource matches readings by exact source name, oldest first. The
// trailing carriage return convention of the raw column is applied here.
func (r *PostgresReadingsRepository) FindBySource(ctx context.Context, sensorID string, start, stop time.Time) ([]*domain.Reading, error) {
	query := `
		SELECT timestamp, type, value_read::text, source_name
		FROM power
		WHERE source_name = $1
		  AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp ASC`

	rows, err := r.db.QueryContext(ctx, query, sensorID+"\r", start, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings by source: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

func scanReadings(rows *sql.Rows) ([]*domain.Reading, error) {
	readings := []*domain.Reading{}
	for rows.Next() {
		var reading domain.Reading
		if err := rows.Scan(
			&reading.Timestamp,
			&reading.MeasurementType,
			&reading.ValueRead,
			&reading.SourceName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, &reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate readings: %w", err)
	}
	return readings, nil
}
