package tracking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/coldchain/backend/internal/domain/shared"
	domain "github.com/coldchain/backend/internal/domain/tracking"
)

// In-memory repository fakes used across the service tests.

type memShipmentRepo struct {
	shipments map[string]*domain.Shipment
}

func newMemShipmentRepo() *memShipmentRepo {
	return &memShipmentRepo{shipments: make(map[string]*domain.Shipment)}
}

func (r *memShipmentRepo) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
	s, ok := r.shipments[trackingNumber]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memShipmentRepo) ExistsByTrackingNumber(_ context.Context, trackingNumber string) (bool, error) {
	_, ok := r.shipments[trackingNumber]
	return ok, nil
}

func (r *memShipmentRepo) Save(_ context.Context, shipment *domain.Shipment) error {
	copied := *shipment
	r.shipments[shipment.TrackingNumber] = &copied
	return nil
}

func (r *memShipmentRepo) Upsert(_ context.Context, shipment *domain.Shipment) error {
	if existing, ok := r.shipments[shipment.TrackingNumber]; ok {
		existing.UpdateRoute(shipment.Origin, shipment.Destination, shipment.CurrentStatus)
		*shipment = *existing
		return nil
	}
	copied := *shipment
	r.shipments[shipment.TrackingNumber] = &copied
	return nil
}

type memStatusRepo struct {
	events []domain.StatusHistory
}

func (r *memStatusRepo) ListByShipment(_ context.Context, shipmentID uuid.UUID) ([]domain.StatusHistory, error) {
	var out []domain.StatusHistory
	for _, e := range r.events {
		if e.ShipmentID == shipmentID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memStatusRepo) Exists(_ context.Context, shipmentID uuid.UUID, status string, location *string, timestamp time.Time) (bool, error) {
	for _, e := range r.events {
		if e.ShipmentID == shipmentID && e.Status == status &&
			strPtrEqual(e.Location, location) && e.Timestamp.Equal(timestamp) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memStatusRepo) Append(_ context.Context, event *domain.StatusHistory) error {
	r.events = append(r.events, *event)
	return nil
}

func (r *memStatusRepo) AppendBatch(_ context.Context, events []*domain.StatusHistory) error {
	for _, e := range events {
		r.events = append(r.events, *e)
	}
	return nil
}

type memSensorRepo struct {
	readings []domain.SensorData
}

func (r *memSensorRepo) ListByShipment(_ context.Context, shipmentID uuid.UUID) ([]domain.SensorData, error) {
	var out []domain.SensorData
	for _, d := range r.readings {
		if d.ShipmentID == shipmentID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memSensorRepo) Exists(_ context.Context, shipmentID uuid.UUID, timestamp time.Time, temperature float64, humidity *float64, location *string) (bool, error) {
	for _, d := range r.readings {
		if d.ShipmentID == shipmentID && d.Timestamp.Equal(timestamp) && d.Temperature == temperature &&
			floatPtrEqual(d.Humidity, humidity) && strPtrEqual(d.Location, location) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSensorRepo) Append(_ context.Context, reading *domain.SensorData) error {
	r.readings = append(r.readings, *reading)
	return nil
}

type memAlertRepo struct {
	alerts []domain.TemperatureAlert
}

func (r *memAlertRepo) ListByShipment(_ context.Context, shipmentID uuid.UUID) ([]domain.TemperatureAlert, error) {
	var out []domain.TemperatureAlert
	for _, a := range r.alerts {
		if a.ShipmentID == shipmentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memAlertRepo) Append(_ context.Context, alert *domain.TemperatureAlert) error {
	r.alerts = append(r.alerts, *alert)
	return nil
}

type memConfigRepo struct {
	values map[string]string
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{values: make(map[string]string)}
}

func (r *memConfigRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *memConfigRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

// Provider fakes.

type fakeTrackingProvider struct {
	info  *domain.TrackInfo
	err   error
	token string
	calls int
}

func (p *fakeTrackingProvider) FetchTracking(_ context.Context, token, _ string) (*domain.TrackInfo, error) {
	p.token = token
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.info, nil
}

type fakeSensorProvider struct {
	reports []domain.SensorReport
	err     error
	token   string
	from    time.Time
	to      time.Time
	calls   int
}

func (p *fakeSensorProvider) FetchReports(_ context.Context, token, _ string, from, to time.Time) ([]domain.SensorReport, error) {
	p.token = token
	p.from = from
	p.to = to
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.reports, nil
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func newTestShipment(trackingNumber string) (*domain.Shipment, error) {
	return domain.NewShipment(trackingNumber, "Memphis", "Oakland", "In transit")
}

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }
