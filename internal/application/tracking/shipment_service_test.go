package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coldchain/backend/internal/domain/shared"
	domain "github.com/coldchain/backend/internal/domain/tracking"
	"github.com/coldchain/backend/internal/infrastructure/metrics"
)

type shipmentServiceFixture struct {
	svc       *ShipmentService
	shipments *memShipmentRepo
	history   *memStatusRepo
	sensors   *memSensorRepo
	alerts    *memAlertRepo
	config    *memConfigRepo
	clock     *clockwork.FakeClock
}

func newShipmentServiceFixture(t *testing.T) *shipmentServiceFixture {
	t.Helper()
	f := &shipmentServiceFixture{
		shipments: newMemShipmentRepo(),
		history:   &memStatusRepo{},
		sensors:   &memSensorRepo{},
		alerts:    &memAlertRepo{},
		config:    newMemConfigRepo(),
		clock:     clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.svc = NewShipmentService(
		f.shipments, f.history, f.sensors, f.alerts,
		NewConfigService(f.config), f.clock, metrics.New(), zap.NewNop(),
	)
	return f
}

func (f *shipmentServiceFixture) createShipment(t *testing.T, trackingNumber string) {
	t.Helper()
	_, err := f.svc.Create(context.Background(), CreateShipmentRequest{
		TrackingNumber: trackingNumber,
		Origin:         "Memphis",
		Destination:    "Oakland",
		CurrentStatus:  "In transit",
	})
	require.NoError(t, err)
}

func TestShipmentServiceCreate(t *testing.T) {
	ctx := context.Background()
	f := newShipmentServiceFixture(t)

	resp, err := f.svc.Create(ctx, CreateShipmentRequest{TrackingNumber: "794843185271"})
	require.NoError(t, err)
	assert.Equal(t, "794843185271", resp.TrackingNumber)
	assert.NotEmpty(t, resp.ID)

	t.Run("duplicate tracking number is rejected", func(t *testing.T) {
		_, err := f.svc.Create(ctx, CreateShipmentRequest{TrackingNumber: "794843185271"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestShipmentServiceGetByTrackingNumber(t *testing.T) {
	ctx := context.Background()
	f := newShipmentServiceFixture(t)
	f.createShipment(t, "794843185271")

	resp, err := f.svc.GetByTrackingNumber(ctx, "794843185271")
	require.NoError(t, err)
	assert.Equal(t, "Memphis", resp.Origin)
	assert.Equal(t, "In transit", resp.CurrentStatus)

	_, err = f.svc.GetByTrackingNumber(ctx, "000000000000")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestShipmentServiceAppendStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and promotes current status", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")

		require.NoError(t, f.svc.AppendStatus(ctx, "794843185271", AppendStatusRequest{
			Status:    "Delivered",
			Location:  strPtr("Oakland"),
			Timestamp: strPtr("2026-03-01T10:00:00Z"),
		}))

		shipment, err := f.svc.GetByTrackingNumber(ctx, "794843185271")
		require.NoError(t, err)
		assert.Equal(t, "Delivered", shipment.CurrentStatus)

		events, err := f.svc.ListStatus(ctx, "794843185271")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), events[0].Timestamp)
	})

	t.Run("missing timestamp defaults to now", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")

		require.NoError(t, f.svc.AppendStatus(ctx, "794843185271", AppendStatusRequest{Status: "Held"}))

		events, err := f.svc.ListStatus(ctx, "794843185271")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, f.clock.Now().UTC(), events[0].Timestamp)
	})

	t.Run("direct appends are not deduplicated", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")

		req := AppendStatusRequest{Status: "Delivered", Timestamp: strPtr("2026-03-01T10:00:00Z")}
		require.NoError(t, f.svc.AppendStatus(ctx, "794843185271", req))
		require.NoError(t, f.svc.AppendStatus(ctx, "794843185271", req))

		events, err := f.svc.ListStatus(ctx, "794843185271")
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("malformed timestamp is invalid input", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")

		err := f.svc.AppendStatus(ctx, "794843185271", AppendStatusRequest{
			Status:    "Delivered",
			Timestamp: strPtr("yesterday"),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TIMESTAMP", domainErr.Code)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		err := f.svc.AppendStatus(ctx, "000000000000", AppendStatusRequest{Status: "Delivered"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestShipmentServiceAppendSensorReading(t *testing.T) {
	ctx := context.Background()

	t.Run("within range stores reading only", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")
		f.config.values[domain.ConfigKeyMinTemperature] = "2"
		f.config.values[domain.ConfigKeyMaxTemperature] = "8"

		require.NoError(t, f.svc.AppendSensorReading(ctx, "794843185271", AppendSensorRequest{
			Temperature: floatPtr(5.0),
		}))

		readings, err := f.svc.ListSensor(ctx, "794843185271")
		require.NoError(t, err)
		require.Len(t, readings, 1)
		assert.Equal(t, f.clock.Now().UTC(), readings[0].Timestamp)

		alerts, err := f.svc.ListAlerts(ctx, "794843185271")
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("excursion records an alert but no status event", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")
		f.config.values[domain.ConfigKeyMinTemperature] = "2"
		f.config.values[domain.ConfigKeyMaxTemperature] = "8"

		require.NoError(t, f.svc.AppendSensorReading(ctx, "794843185271", AppendSensorRequest{
			Temperature: floatPtr(9.5),
			Timestamp:   strPtr("2026-03-01T10:00:00Z"),
		}))

		alerts, err := f.svc.ListAlerts(ctx, "794843185271")
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "above_max", alerts[0].AlertType)
		assert.Equal(t, 9.5, alerts[0].Temperature)

		events, err := f.svc.ListStatus(ctx, "794843185271")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("no configured bounds never alerts", func(t *testing.T) {
		f := newShipmentServiceFixture(t)
		f.createShipment(t, "794843185271")

		require.NoError(t, f.svc.AppendSensorReading(ctx, "794843185271", AppendSensorRequest{
			Temperature: floatPtr(-40.0),
		}))

		alerts, err := f.svc.ListAlerts(ctx, "794843185271")
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}
