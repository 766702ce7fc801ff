package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coldchain/backend/internal/domain/tracking"
)

// GormTemperatureAlertRepository implements TemperatureAlertRepository using GORM
type GormTemperatureAlertRepository struct {
	db *gorm.DB
}

// NewGormTemperatureAlertRepository creates a new GormTemperatureAlertRepository
func NewGormTemperatureAlertRepository(db *gorm.DB) *GormTemperatureAlertRepository {
	return &GormTemperatureAlertRepository{db: db}
}

// ListByShipment returns all alerts for a shipment, timestamp ascending
func (r *GormTemperatureAlertRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]tracking.TemperatureAlert, error) {
	var alerts []tracking.TemperatureAlert
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("timestamp ASC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Append stores a new alert
func (r *GormTemperatureAlertRepository) Append(ctx context.Context, alert *tracking.TemperatureAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// Ensure GormTemperatureAlertRepository implements TemperatureAlertRepository
var _ tracking.TemperatureAlertRepository = (*GormTemperatureAlertRepository)(nil)
