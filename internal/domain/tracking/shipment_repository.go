package tracking

import "context"

// ShipmentRepository defines the interface for shipment persistence
type ShipmentRepository interface {
	// FindByTrackingNumber finds a shipment by its tracking number
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)

	// ExistsByTrackingNumber checks whether a tracking number is already known
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// Save creates or updates a shipment
	Save(ctx context.Context, shipment *Shipment) error

	// Upsert inserts the shipment or, when the tracking number already
	// exists, updates its route and current status in place. Safe against
	// concurrent ingestions of the same tracking number.
	Upsert(ctx context.Context, shipment *Shipment) error
}
