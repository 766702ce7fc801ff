package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coldchain/backend/internal/domain/tracking"
)

// GormSensorDataRepository implements SensorDataRepository using GORM
type GormSensorDataRepository struct {
	db *gorm.DB
}

// NewGormSensorDataRepository creates a new GormSensorDataRepository
func NewGormSensorDataRepository(db *gorm.DB) *GormSensorDataRepository {
	return &GormSensorDataRepository{db: db}
}

// ListByShipment returns all readings for a shipment, timestamp ascending
func (r *GormSensorDataRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]tracking.SensorData, error) {
	var readings []tracking.SensorData
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("timestamp ASC").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// Exists reports whether an identical sensor reading is already stored
func (r *GormSensorDataRepository) Exists(ctx context.Context, shipmentID uuid.UUID, timestamp time.Time, temperature float64, humidity *float64, location *string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&tracking.SensorData{}).
		Where("shipment_id = ? AND timestamp = ? AND temperature = ?", shipmentID, timestamp, temperature)

	if humidity == nil {
		query = query.Where("humidity IS NULL")
	} else {
		query = query.Where("humidity = ?", *humidity)
	}
	if location == nil {
		query = query.Where("location IS NULL")
	} else {
		query = query.Where("location = ?", *location)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Append stores a new sensor reading
func (r *GormSensorDataRepository) Append(ctx context.Context, reading *tracking.SensorData) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

// Ensure GormSensorDataRepository implements SensorDataRepository
var _ tracking.SensorDataRepository = (*GormSensorDataRepository)(nil)
