package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coldchain/backend/internal/domain/tracking"
)

// GormConfigRepository implements ConfigRepository using GORM
type GormConfigRepository struct {
	db *gorm.DB
}

// NewGormConfigRepository creates a new GormConfigRepository
func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// Get returns the value for a key; the bool reports whether the key exists
func (r *GormConfigRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry tracking.ConfigEntry
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set creates or replaces the value for a key
func (r *GormConfigRepository) Set(ctx context.Context, key, value string) error {
	entry := tracking.NewConfigEntry(key, value)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      value,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(entry).Error
}

// Ensure GormConfigRepository implements ConfigRepository
var _ tracking.ConfigRepository = (*GormConfigRepository)(nil)
