package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/coldchain/backend/internal/domain/tracking"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByTrackingNumber finds a shipment by its tracking number
func (r *GormShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*tracking.Shipment, error) {
	var shipment tracking.Shipment
	if err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&shipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

// ExistsByTrackingNumber checks whether a tracking number is already known
func (r *GormShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&tracking.Shipment{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *tracking.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}

// Upsert inserts the shipment or updates the existing row with the same
// tracking number. The conflict clause makes concurrent ingestions of one
// tracking number converge on a single row instead of failing.
func (r *GormShipmentRepository) Upsert(ctx context.Context, shipment *tracking.Shipment) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tracking_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"origin", "destination", "current_status", "updated_at"}),
		}).
		Create(shipment).Error; err != nil {
		return err
	}

	// Re-read so the caller sees the canonical row ID when the insert
	// resolved to an update.
	stored, err := r.FindByTrackingNumber(ctx, shipment.TrackingNumber)
	if err != nil {
		return err
	}
	*shipment = *stored
	return nil
}

// Ensure GormShipmentRepository implements ShipmentRepository
var _ tracking.ShipmentRepository = (*GormShipmentRepository)(nil)
