package tracking

import (
	"time"

	domain "github.com/coldchain/backend/internal/domain/tracking"
)

// CreateShipmentRequest is the request for manually registering a shipment
type CreateShipmentRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	CurrentStatus  string `json:"current_status"`
}

// CreateShipmentResponse identifies a newly registered shipment
type CreateShipmentResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
}

// ShipmentResponse is the full shipment view
type ShipmentResponse struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	CurrentStatus  string    `json:"current_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AppendStatusRequest is the request for manually adding a status event
type AppendStatusRequest struct {
	Status    string  `json:"status" binding:"required"`
	Location  *string `json:"location"`
	Timestamp *string `json:"timestamp"`
}

// StatusEventResponse is one status event in a shipment's history
type StatusEventResponse struct {
	Status    string    `json:"status"`
	Location  *string   `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// AppendSensorRequest is the request for manually adding a sensor reading
type AppendSensorRequest struct {
	Timestamp   *string  `json:"timestamp"`
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *float64 `json:"humidity"`
	Location    *string  `json:"location"`
}

// SensorReadingResponse is one stored sensor reading
type SensorReadingResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Location    *string   `json:"location"`
}

// AlertResponse is one stored temperature alert
type AlertResponse struct {
	Temperature float64   `json:"temperature"`
	AlertType   string    `json:"alert_type"`
	Timestamp   time.Time `json:"timestamp"`
}

// TemperatureRangeResponse is the configured temperature range; a nil bound
// means that side is not enforced
type TemperatureRangeResponse struct {
	MinTemperature *float64 `json:"min_temperature"`
	MaxTemperature *float64 `json:"max_temperature"`
}

// SetTemperatureRangeRequest replaces the configured temperature range.
// Both bounds are required.
type SetTemperatureRangeRequest struct {
	MinTemperature *float64 `json:"min_temperature" binding:"required"`
	MaxTemperature *float64 `json:"max_temperature" binding:"required"`
}

// IngestRequest drives one ingestion run for a shipment/sensor pair.
// Provider tokens fall back to the configured defaults when omitted.
// TempMin/TempMax override the stored range for this run only.
type IngestRequest struct {
	FedExBearerToken string   `json:"fedex_bearer_token"`
	OnAssetToken     string   `json:"onasset_token"`
	TrackingNumber   string   `json:"tracking_number" binding:"required"`
	SensorID         string   `json:"sensor_id" binding:"required"`
	TempMin          *float64 `json:"temp_min"`
	TempMax          *float64 `json:"temp_max"`
}

// FetchShipmentsRequest points a bulk import at an external shipment feed
type FetchShipmentsRequest struct {
	APIURL string `json:"api_url" binding:"required"`
}

func shipmentToResponse(s *domain.Shipment) *ShipmentResponse {
	return &ShipmentResponse{
		ID:             s.ID.String(),
		TrackingNumber: s.TrackingNumber,
		Origin:         s.Origin,
		Destination:    s.Destination,
		CurrentStatus:  s.CurrentStatus,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func statusToResponse(events []domain.StatusHistory) []StatusEventResponse {
	out := make([]StatusEventResponse, len(events))
	for i, e := range events {
		out[i] = StatusEventResponse{
			Status:    e.Status,
			Location:  e.Location,
			Timestamp: e.Timestamp,
		}
	}
	return out
}

func readingsToResponse(readings []domain.SensorData) []SensorReadingResponse {
	out := make([]SensorReadingResponse, len(readings))
	for i, r := range readings {
		out[i] = SensorReadingResponse{
			Timestamp:   r.Timestamp,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Location:    r.Location,
		}
	}
	return out
}

func alertsToResponse(alerts []domain.TemperatureAlert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = AlertResponse{
			Temperature: a.Temperature,
			AlertType:   string(a.AlertType),
			Timestamp:   a.Timestamp,
		}
	}
	return out
}
