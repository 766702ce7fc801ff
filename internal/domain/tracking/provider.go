package tracking

import (
	"context"
	"time"
)

// ScanEvent is one carrier scan as reported upstream. Timestamp is the raw
// provider string; parsing happens during ingestion so a malformed value can
// be reported against the run that saw it.
type ScanEvent struct {
	Status    string
	Location  *string
	Timestamp string
}

// TrackInfo is the carrier's view of a shipment
type TrackInfo struct {
	Origin        string
	Destination   string
	CurrentStatus string
	ScanEvents    []ScanEvent
}

// SensorReport is one reading from the sensor provider. Temperature is a
// pointer because reports without a temperature are skipped, not zeroed.
type SensorReport struct {
	Timestamp   string
	Temperature *float64
	Humidity    *float64
	Location    *string
}

// TrackingProvider fetches shipment tracking data from the parcel carrier
type TrackingProvider interface {
	// FetchTracking returns the tracking result for one tracking number.
	// Returns shared.ErrNotFound when the carrier has no results and an
	// error wrapping shared.ErrUpstream on transport or non-2xx failures.
	FetchTracking(ctx context.Context, token, trackingNumber string) (*TrackInfo, error)
}

// SensorProvider fetches cold-chain telemetry from the sensor platform
type SensorProvider interface {
	// FetchReports returns sensor readings recorded between from and to.
	FetchReports(ctx context.Context, token, sensorID string, from, to time.Time) ([]SensorReport, error)
}
