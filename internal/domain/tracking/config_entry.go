package tracking

import "github.com/coldchain/backend/internal/domain/shared"

// Recognized configuration keys
const (
	ConfigKeyMinTemperature = "min_temperature"
	ConfigKeyMaxTemperature = "max_temperature"
)

// ConfigEntry is a flat key/value configuration row.
// Temperature bounds are stored as strings and parsed on read;
// an absent key means the corresponding bound is not enforced.
type ConfigEntry struct {
	shared.BaseEntity
	Key   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"key"`
	Value string `gorm:"type:varchar(200)" json:"value"`
}

// TableName returns the table name for GORM
func (ConfigEntry) TableName() string {
	return "config"
}

// NewConfigEntry creates a configuration row
func NewConfigEntry(key, value string) *ConfigEntry {
	return &ConfigEntry{
		BaseEntity: shared.NewBaseEntity(),
		Key:        key,
		Value:      value,
	}
}
