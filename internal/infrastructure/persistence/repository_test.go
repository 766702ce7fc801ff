package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/coldchain/backend/internal/domain/tracking"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&tracking.Shipment{},
		&tracking.StatusHistory{},
		&tracking.SensorData{},
		&tracking.TemperatureAlert{},
		&tracking.ConfigEntry{},
	))
	return db
}

func mustShipment(t *testing.T, db *gorm.DB, trackingNumber string) *tracking.Shipment {
	t.Helper()
	s, err := tracking.NewShipment(trackingNumber, "Memphis", "Oakland", "In transit")
	require.NoError(t, err)
	require.NoError(t, NewGormShipmentRepository(db).Save(context.Background(), s))
	return s
}

func TestGormShipmentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShipmentRepository(db)
	ctx := context.Background()

	t.Run("find missing returns not found", func(t *testing.T) {
		_, err := repo.FindByTrackingNumber(ctx, "000000000000")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save and find", func(t *testing.T) {
		s := mustShipment(t, db, "794843185271")

		found, err := repo.FindByTrackingNumber(ctx, "794843185271")
		require.NoError(t, err)
		assert.Equal(t, s.ID, found.ID)
		assert.Equal(t, "Memphis", found.Origin)

		exists, err := repo.ExistsByTrackingNumber(ctx, "794843185271")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("upsert updates existing row in place", func(t *testing.T) {
		first := mustShipment(t, db, "561657961820")

		second, err := tracking.NewShipment("561657961820", "Memphis", "Seattle", "Delivered")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, second))

		// The original row survives with refreshed fields
		assert.Equal(t, first.ID, second.ID)

		found, err := repo.FindByTrackingNumber(ctx, "561657961820")
		require.NoError(t, err)
		assert.Equal(t, "Seattle", found.Destination)
		assert.Equal(t, "Delivered", found.CurrentStatus)

		var count int64
		require.NoError(t, db.Model(&tracking.Shipment{}).
			Where("tracking_number = ?", "561657961820").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestGormStatusHistoryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatusHistoryRepository(db)
	ctx := context.Background()
	shipment := mustShipment(t, db, "794843185271")

	loc := "Memphis"
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, tracking.NewStatusHistory(shipment.ID, "Picked up", &loc, ts)))
	require.NoError(t, repo.Append(ctx, tracking.NewStatusHistory(shipment.ID, "Departed", nil, ts.Add(-time.Hour))))

	t.Run("list is timestamp ascending", func(t *testing.T) {
		events, err := repo.ListByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Departed", events[0].Status)
		assert.Equal(t, "Picked up", events[1].Status)
	})

	t.Run("exists matches all fields including null location", func(t *testing.T) {
		exists, err := repo.Exists(ctx, shipment.ID, "Picked up", &loc, ts)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, shipment.ID, "Picked up", nil, ts)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.Exists(ctx, shipment.ID, "Departed", nil, ts.Add(-time.Hour))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("append batch", func(t *testing.T) {
		events := []*tracking.StatusHistory{
			tracking.NewStatusHistory(shipment.ID, "Out for delivery", nil, ts.Add(time.Hour)),
			tracking.NewStatusHistory(shipment.ID, "Delivered", nil, ts.Add(2*time.Hour)),
		}
		require.NoError(t, repo.AppendBatch(ctx, events))

		all, err := repo.ListByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestGormSensorDataRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSensorDataRepository(db)
	ctx := context.Background()
	shipment := mustShipment(t, db, "794843185271")

	humidity := 45.0
	loc := "35.1,-90.0"
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, tracking.NewSensorData(shipment.ID, ts, 4.2, &humidity, &loc)))
	require.NoError(t, repo.Append(ctx, tracking.NewSensorData(shipment.ID, ts.Add(-time.Minute), 3.9, nil, nil)))

	t.Run("list is timestamp ascending", func(t *testing.T) {
		readings, err := repo.ListByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		require.Len(t, readings, 2)
		assert.Equal(t, 3.9, readings[0].Temperature)
		assert.Equal(t, 4.2, readings[1].Temperature)
	})

	t.Run("exists distinguishes optional fields", func(t *testing.T) {
		exists, err := repo.Exists(ctx, shipment.ID, ts, 4.2, &humidity, &loc)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, shipment.ID, ts, 4.2, nil, &loc)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.Exists(ctx, shipment.ID, ts.Add(-time.Minute), 3.9, nil, nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestGormTemperatureAlertRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTemperatureAlertRepository(db)
	ctx := context.Background()
	shipment := mustShipment(t, db, "794843185271")

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, tracking.NewTemperatureAlert(shipment.ID, ts, 9.5, tracking.AlertAboveMax)))
	require.NoError(t, repo.Append(ctx, tracking.NewTemperatureAlert(shipment.ID, ts.Add(-time.Hour), 1.0, tracking.AlertBelowMin)))

	alerts, err := repo.ListByShipment(ctx, shipment.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, tracking.AlertBelowMin, alerts[0].AlertType)
	assert.Equal(t, tracking.AlertAboveMax, alerts[1].AlertType)
}

func TestGormConfigRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormConfigRepository(db)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, found, err := repo.Get(ctx, tracking.ConfigKeyMinTemperature)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, tracking.ConfigKeyMinTemperature, "2"))

		value, found, err := repo.Get(ctx, tracking.ConfigKeyMinTemperature)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "2", value)
	})

	t.Run("set replaces existing value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, tracking.ConfigKeyMinTemperature, "-5"))

		value, found, err := repo.Get(ctx, tracking.ConfigKeyMinTemperature)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "-5", value)

		var count int64
		require.NoError(t, db.Model(&tracking.ConfigEntry{}).
			Where("key = ?", tracking.ConfigKeyMinTemperature).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
