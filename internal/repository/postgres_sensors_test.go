package repository

import (
	"context"
	"database/sql"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaym93/gtpower/internal/domain"
)

func setupSensorsMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresSensorsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresSensorsRepository(db)
}

func TestGetSensor(t *testing.T) {
	db, mock, repo := setupSensorsMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sensor_id", "type", "site", "protocol", "description", "cluster_id"}).
		AddRow("B003E_MH1", "Electric", "B003", "BACnet", "Mains meter", "C1")

	mock.ExpectQuery(`SELECT sensor_id, type, site, protocol`).
		WithArgs("B003E_MH1").
		WillReturnRows(rows)

	sensor, err := repo.GetSensor(context.Background(), "B003E_MH1")
	require.NoError(t, err)
	assert.Equal(t, "B003E_MH1", sensor.SensorID)
	assert.Equal(t, "Electric", sensor.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSensor_NotFound(t *testing.T) {
	db, mock, repo := setupSensorsMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT sensor_id, type, site, protocol`).
		WithArgs("B003E_LH1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSensor(context.Background(), "B003E_LH1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Guards the query column list against the shipped schema: a mocked driver
// never prepares the statement, so a drifted column name would otherwise
// only surface against a live database.
func TestSensorColumns_MatchShippedSchema(t *testing.T) {
	data, err := os.ReadFile("../../scripts/schema.sql")
	require.NoError(t, err)

	tablePattern := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS sensors \((.*?)\);`)
	m := tablePattern.FindStringSubmatch(string(data))
	require.NotNil(t, m, "sensors table definition missing from schema")

	for _, column := range strings.Split(sensorColumns, ",") {
		column = strings.TrimSpace(column)
		columnPattern := regexp.MustCompile(`(?m)^\s*` + column + `\s`)
		assert.True(t, columnPattern.MatchString(m[1]),
			"column %q selected by GetSensor is not defined in schema.sql", column)
	}
}
