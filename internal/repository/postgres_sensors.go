package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaym93/gtpower/internal/domain"
)

// PostgresSensorsRepository reads the sensors metadata table.
type PostgresSensorsRepository struct {
	db *sql.DB
}

func NewPostgresSensorsRepository(db *sql.DB) *PostgresSensorsRepository {
	return &PostgresSensorsRepository{db: db}
}

var _ SensorsRepository = (*PostgresSensorsRepository)(nil)

const sensorColumns = `sensor_id, type, site, protocol, description, cluster_id`

func (r *PostgresSensorsRepository) GetSensor(ctx context.Context, sensorID string) (*domain.Sensor, error) {
	query := `
		SELECT ` + sensorColumns + `
		FROM sensors
		WHERE sensor_id = $1`

	var sensor domain.Sensor
	err := r.db.QueryRowContext(ctx, query, sensorID).Scan(
		&sensor.SensorID,
		&sensor.Type,
		&sensor.Site,
		&sensor.Protocol,
		&sensor.Description,
		&sensor.ClusterID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sensor %q: %w", sensorID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sensor: %w", err)
	}

	return &sensor, nil
}
