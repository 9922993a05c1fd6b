package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
	"github.com/jaym93/gtpower/internal/repository"
	"github.com/jaym93/gtpower/internal/sensortype"
)

// ReadingService answers the facilities endpoints: normalize the request,
// hit the repository, decode source names, project to the wire shape.
type ReadingService struct {
	readings repository.ReadingsRepository
	sensors  repository.SensorsRepository
	decoder  *sensortype.Decoder
	logger   *zap.Logger
}

func NewReadingService(readings repository.ReadingsRepository, sensors repository.SensorsRepository, decoder *sensortype.Decoder, logger *zap.Logger) *ReadingService {
	return &ReadingService{
		readings: readings,
		sensors:  sensors,
		decoder:  decoder,
		logger:   logger,
	}
}

// ReadingItem is the wire shape of one reading. Timestamps are RFC 3339 UTC
// so clients can convert to local time; value_read stays a string to
// preserve decimal precision.
type ReadingItem struct {
	BID        string `json:"b_id,omitempty"`
	SourceName string `json:"source_name"`
	SourceType string `json:"source_type"`
	Timestamp  string `json:"timestamp"`
	Units      string `json:"units"`
	ValueRead  string `json:"value_read"`
}

// EnergyByBuilding returns Active Energy Delivered readings for one
// building in the given window, newest first.
func (s *ReadingService) EnergyByBuilding(ctx context.Context, bIDRaw, startRaw, stopRaw string) ([]ReadingItem, error) {
	return s.byBuilding(ctx, domain.MeasurementEnergy, bIDRaw, startRaw, stopRaw)
}

// PowerByBuilding returns Active Power readings for one building in the
// given window, newest first.
func (s *ReadingService) PowerByBuilding(ctx context.Context, bIDRaw, startRaw, stopRaw string) ([]ReadingItem, error) {
	return s.byBuilding(ctx, domain.MeasurementPower, bIDRaw, startRaw, stopRaw)
}

func (s *ReadingService) byBuilding(ctx context.Context, measurementType, bIDRaw, startRaw, stopRaw string) ([]ReadingItem, error) {
	code, err := NormalizeBuildingCode(bIDRaw)
	if err != nil {
		return nil, err
	}
	start, stop, err := ParseTimeRange(startRaw, stopRaw)
	if err != nil {
		return nil, err
	}

	readings, err := s.readings.FindByBuilding(ctx, measurementType, code, start, stop, repository.OrderDescending)
	if err != nil {
		s.logger.Error("failed to query building readings",
			zap.String("b_id", code),
			zap.String("type", measurementType),
			zap.Error(err))
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}

	return s.project(readings, code), nil
}

// SensorSeries returns every reading of one exact sensor in the given
// window, oldest first.
func (s *ReadingService) SensorSeries(ctx context.Context, sensorID, startRaw, stopRaw string) ([]ReadingItem, error) {
	if sensorID == "" {
		return nil, fmt.Errorf("%w: sensor id is required", domain.ErrInvalidArgument)
	}
	start, stop, err := ParseTimeRange(startRaw, stopRaw)
	if err != nil {
		return nil, err
	}

	readings, err := s.readings.FindBySource(ctx, sensorID, start, stop)
	if err != nil {
		s.logger.Error("failed to query sensor readings",
			zap.String("sensor_id", sensorID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}

	return s.project(readings, ""), nil
}

// SensorMetadata returns the reference metadata for one sensor.
func (s *ReadingService) SensorMetadata(ctx context.Context, sensorID string) (*domain.Sensor, error) {
	if sensorID == "" {
		return nil, fmt.Errorf("%w: sensor id is required", domain.ErrInvalidArgument)
	}
	return s.sensors.GetSensor(ctx, sensorID)
}

// project shapes repository rows for the wire. bID is empty for
// sensor-scoped queries, which omit the field.
func (s *ReadingService) project(readings []*domain.Reading, bID string) []ReadingItem {
	items := make([]ReadingItem, 0, len(readings))
	for _, r := range readings {
		clean, category := s.decoder.Decode(r.SourceName)
		items = append(items, ReadingItem{
			BID:        bID,
			SourceName: clean,
			SourceType: category,
			Timestamp:  r.Timestamp.UTC().Format(time.RFC3339),
			Units:      sensortype.Units(r.MeasurementType),
			ValueRead:  r.ValueRead,
		})
	}
	return items
}
