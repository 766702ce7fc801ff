package tracking

import (
	"time"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AlertType classifies a temperature excursion
type AlertType string

const (
	AlertBelowMin AlertType = "below_min"
	AlertAboveMax AlertType = "above_max"
)

// StatusHistory is an append-only status event belonging to one shipment.
// Location is optional; carrier scan events may omit it.
type StatusHistory struct {
	shared.BaseEntity
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Status     string    `gorm:"type:varchar(300);not null" json:"status"`
	Location   *string   `gorm:"type:varchar(200)" json:"location"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

// TableName returns the table name for GORM
func (StatusHistory) TableName() string {
	return "status_history"
}

// NewStatusHistory creates a status event for a shipment
func NewStatusHistory(shipmentID uuid.UUID, status string, location *string, timestamp time.Time) *StatusHistory {
	return &StatusHistory{
		BaseEntity: shared.NewBaseEntity(),
		ShipmentID: shipmentID,
		Status:     status,
		Location:   location,
		Timestamp:  timestamp,
	}
}

// SensorData is a single cold-chain reading belonging to one shipment.
// Temperature is required; humidity and location are optional.
type SensorData struct {
	shared.BaseEntity
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Location    *string   `gorm:"type:varchar(200)" json:"location"`
}

// TableName returns the table name for GORM
func (SensorData) TableName() string {
	return "sensor_data"
}

// NewSensorData creates a sensor reading for a shipment
func NewSensorData(shipmentID uuid.UUID, timestamp time.Time, temperature float64, humidity *float64, location *string) *SensorData {
	return &SensorData{
		BaseEntity:  shared.NewBaseEntity(),
		ShipmentID:  shipmentID,
		Timestamp:   timestamp,
		Temperature: temperature,
		Humidity:    humidity,
		Location:    location,
	}
}

// TemperatureAlert records a reading outside the configured range.
// Alerts are produced only by threshold evaluation, never by clients.
type TemperatureAlert struct {
	shared.BaseEntity
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	AlertType   AlertType `gorm:"type:varchar(20);not null" json:"alert_type"`
}

// TableName returns the table name for GORM
func (TemperatureAlert) TableName() string {
	return "temperature_alerts"
}

// NewTemperatureAlert creates an alert for a shipment
func NewTemperatureAlert(shipmentID uuid.UUID, timestamp time.Time, temperature float64, alertType AlertType) *TemperatureAlert {
	return &TemperatureAlert{
		BaseEntity:  shared.NewBaseEntity(),
		ShipmentID:  shipmentID,
		Timestamp:   timestamp,
		Temperature: temperature,
		AlertType:   alertType,
	}
}
