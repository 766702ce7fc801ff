package tracking

import (
	"strings"

	"github.com/coldchain/backend/internal/domain/shared"
)

// Shipment represents a tracked parcel identified by a carrier tracking number.
// It is the aggregate root for status history, sensor readings and alerts.
type Shipment struct {
	shared.BaseEntity
	TrackingNumber string `gorm:"type:varchar(64);not null;uniqueIndex" json:"tracking_number"`
	Origin         string `gorm:"type:varchar(200)" json:"origin"`
	Destination    string `gorm:"type:varchar(200)" json:"destination"`
	CurrentStatus  string `gorm:"type:varchar(200)" json:"current_status"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment creates a new shipment with required fields
func NewShipment(trackingNumber, origin, destination, currentStatus string) (*Shipment, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, shared.NewDomainError("INVALID_TRACKING_NUMBER", "Tracking number cannot be empty")
	}
	if len(trackingNumber) > 64 {
		return nil, shared.NewDomainError("INVALID_TRACKING_NUMBER", "Tracking number cannot exceed 64 characters")
	}

	return &Shipment{
		BaseEntity:     shared.NewBaseEntity(),
		TrackingNumber: trackingNumber,
		Origin:         origin,
		Destination:    destination,
		CurrentStatus:  currentStatus,
	}, nil
}

// UpdateRoute refreshes the carrier-reported route and latest status
func (s *Shipment) UpdateRoute(origin, destination, currentStatus string) {
	s.Origin = origin
	s.Destination = destination
	s.CurrentStatus = currentStatus
}

// SetCurrentStatus records the most recent status label
func (s *Shipment) SetCurrentStatus(status string) {
	s.CurrentStatus = status
}
