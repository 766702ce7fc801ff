package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusHistoryRepository defines the interface for status event persistence.
// Status history is append-only; no updates or deletes are exposed.
type StatusHistoryRepository interface {
	// ListByShipment returns all status events for a shipment, timestamp ascending
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]StatusHistory, error)

	// Exists reports whether an identical (shipment, status, location,
	// timestamp) row is already stored. This backs the ingestion dedup
	// policy; it is advisory, not a database constraint.
	Exists(ctx context.Context, shipmentID uuid.UUID, status string, location *string, timestamp time.Time) (bool, error)

	// Append stores a new status event
	Append(ctx context.Context, event *StatusHistory) error

	// AppendBatch stores multiple status events
	AppendBatch(ctx context.Context, events []*StatusHistory) error
}

// SensorDataRepository defines the interface for sensor reading persistence
type SensorDataRepository interface {
	// ListByShipment returns all readings for a shipment, timestamp ascending
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]SensorData, error)

	// Exists reports whether an identical (shipment, timestamp, temperature,
	// humidity, location) row is already stored.
	Exists(ctx context.Context, shipmentID uuid.UUID, timestamp time.Time, temperature float64, humidity *float64, location *string) (bool, error)

	// Append stores a new sensor reading
	Append(ctx context.Context, reading *SensorData) error
}

// TemperatureAlertRepository defines the interface for alert persistence
type TemperatureAlertRepository interface {
	// ListByShipment returns all alerts for a shipment, timestamp ascending
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]TemperatureAlert, error)

	// Append stores a new alert
	Append(ctx context.Context, alert *TemperatureAlert) error
}

// ConfigRepository defines the interface for the key/value config store
type ConfigRepository interface {
	// Get returns the value for a key; the bool reports whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set creates or replaces the value for a key
	Set(ctx context.Context, key, value string) error
}
