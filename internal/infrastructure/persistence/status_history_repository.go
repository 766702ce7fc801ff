package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coldchain/backend/internal/domain/tracking"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GormStatusHistoryRepository
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// ListByShipment returns all status events for a shipment, timestamp ascending
func (r *GormStatusHistoryRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]tracking.StatusHistory, error) {
	var events []tracking.StatusHistory
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("timestamp ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Exists reports whether an identical status event is already stored
func (r *GormStatusHistoryRepository) Exists(ctx context.Context, shipmentID uuid.UUID, status string, location *string, timestamp time.Time) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&tracking.StatusHistory{}).
		Where("shipment_id = ? AND status = ? AND timestamp = ?", shipmentID, status, timestamp)

	// NULL never compares equal, so the optional column needs an explicit
	// IS NULL branch.
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

// Append stores a new status event
func (r *GormStatusHistoryRepository) Append(ctx context.Context, event *tracking.StatusHistory) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// AppendBatch stores multiple status events
func (r *GormStatusHistoryRepository) AppendBatch(ctx context.Context, events []*tracking.StatusHistory) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(events).Error
}

// Ensure GormStatusHistoryRepository implements StatusHistoryRepository
var _ tracking.StatusHistoryRepository = (*GormStatusHistoryRepository)(nil)
