package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/coldchain/backend/internal/domain/shared"
	domain "github.com/coldchain/backend/internal/domain/tracking"
	"github.com/coldchain/backend/internal/infrastructure/config"
	"github.com/coldchain/backend/internal/infrastructure/metrics"
)

// sensorLookback is how far back sensor reports are requested on each run
const sensorLookback = 7 * 24 * time.Hour

// scan events without a status label are stored as "Unknown"
const unknownStatus = "Unknown"

// IngestService orchestrates one ingestion run: tracking data from the
// carrier, then sensor telemetry with threshold evaluation. The run commits
// in three steps (shipment, status batch, sensor batch); a failure partway
// leaves the earlier steps in place.
type IngestService struct {
	shipmentRepo domain.ShipmentRepository
	historyRepo  domain.StatusHistoryRepository
	sensorRepo   domain.SensorDataRepository
	alertRepo    domain.TemperatureAlertRepository
	configSvc    *ConfigService
	carrier      domain.TrackingProvider
	sensors      domain.SensorProvider
	providers    config.ProvidersConfig
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewIngestService creates a new IngestService
func NewIngestService(
	shipmentRepo domain.ShipmentRepository,
	historyRepo domain.StatusHistoryRepository,
	sensorRepo domain.SensorDataRepository,
	alertRepo domain.TemperatureAlertRepository,
	configSvc *ConfigService,
	carrier domain.TrackingProvider,
	sensors domain.SensorProvider,
	providers config.ProvidersConfig,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		shipmentRepo: shipmentRepo,
		historyRepo:  historyRepo,
		sensorRepo:   sensorRepo,
		alertRepo:    alertRepo,
		configSvc:    configSvc,
		carrier:      carrier,
		sensors:      sensors,
		providers:    providers,
		clock:        clock,
		metrics:      m,
		logger:       logger.Named("ingest_service"),
	}
}

// Ingest runs a full ingestion for one shipment/sensor pair
func (s *IngestService) Ingest(ctx context.Context, req IngestRequest) error {
	err := s.ingest(ctx, req)
	s.metrics.IngestRuns.WithLabelValues(ingestOutcome(err)).Inc()
	return err
}

func (s *IngestService) ingest(ctx context.Context, req IngestRequest) error {
	fedexToken := req.FedExBearerToken
	if fedexToken == "" {
		fedexToken = s.providers.FedExToken
	}
	onassetToken := req.OnAssetToken
	if onassetToken == "" {
		onassetToken = s.providers.OnAssetToken
	}
	if fedexToken == "" || onassetToken == "" {
		return shared.NewDomainError("INVALID_INPUT",
			"Missing one or more required keys: fedex_bearer_token, onasset_token")
	}

	bounds, err := s.configSvc.ResolveBounds(ctx, req.TempMin, req.TempMax)
	if err != nil {
		return err
	}

	info, err := s.carrier.FetchTracking(ctx, fedexToken, req.TrackingNumber)
	if err != nil {
		if errors.Is(err, shared.ErrUpstream) {
			s.metrics.UpstreamErrors.WithLabelValues("fedex").Inc()
		}
		return err
	}

	shipment, err := domain.NewShipment(req.TrackingNumber, info.Origin, info.Destination, info.CurrentStatus)
	if err != nil {
		return err
	}
	if err := s.shipmentRepo.Upsert(ctx, shipment); err != nil {
		return err
	}

	if err := s.storeScanEvents(ctx, shipment, info.ScanEvents); err != nil {
		return err
	}

	return s.storeSensorReports(ctx, shipment, onassetToken, req.SensorID, bounds)
}

// scanEventKey identifies a scan event for in-payload deduplication.
// A nil location and an empty one are distinct, matching the stored
// NULL-aware comparison.
type scanEventKey struct {
	status      string
	location    string
	hasLocation bool
	timestamp   time.Time
}

func (s *IngestService) storeScanEvents(ctx context.Context, shipment *domain.Shipment, events []domain.ScanEvent) error {
	batch := make([]*domain.StatusHistory, 0, len(events))
	seen := make(map[scanEventKey]struct{}, len(events))
	for _, event := range events {
		status := event.Status
		if status == "" {
			status = unknownStatus
		}

		timestamp := s.clock.Now().UTC()
		if event.Timestamp != "" {
			var err error
			timestamp, err = parseTimestamp(event.Timestamp)
			if err != nil {
				return fmt.Errorf("fedex scan event: %w", err)
			}
		}

		// Carriers repeat scan events both across payloads and within
		// one, so check the pending batch as well as the stored rows
		key := scanEventKey{status: status, timestamp: timestamp}
		if event.Location != nil {
			key.location = *event.Location
			key.hasLocation = true
		}
		if _, dup := seen[key]; dup {
			s.metrics.RowsDeduplicated.WithLabelValues("status_history").Inc()
			continue
		}

		exists, err := s.historyRepo.Exists(ctx, shipment.ID, status, event.Location, timestamp)
		if err != nil {
			return err
		}
		if exists {
			s.metrics.RowsDeduplicated.WithLabelValues("status_history").Inc()
			continue
		}
		seen[key] = struct{}{}
		batch = append(batch, domain.NewStatusHistory(shipment.ID, status, event.Location, timestamp))
	}

	if err := s.historyRepo.AppendBatch(ctx, batch); err != nil {
		return err
	}
	s.metrics.RowsStored.WithLabelValues("status_history").Add(float64(len(batch)))
	return nil
}

func (s *IngestService) storeSensorReports(ctx context.Context, shipment *domain.Shipment, token, sensorID string, bounds domain.TemperatureBounds) error {
	now := s.clock.Now().UTC()
	reports, err := s.sensors.FetchReports(ctx, token, sensorID, now.Add(-sensorLookback), now)
	if err != nil {
		if errors.Is(err, shared.ErrUpstream) {
			s.metrics.UpstreamErrors.WithLabelValues("onasset").Inc()
		}
		return err
	}

	for _, report := range reports {
		// A reading without a timestamp or temperature cannot be stored
		// or evaluated
		if report.Timestamp == "" || report.Temperature == nil {
			continue
		}

		timestamp, err := parseTimestamp(report.Timestamp)
		if err != nil {
			return fmt.Errorf("onasset report: %w", err)
		}

		exists, err := s.sensorRepo.Exists(ctx, shipment.ID, timestamp, *report.Temperature, report.Humidity, report.Location)
		if err != nil {
			return err
		}
		if exists {
			s.metrics.RowsDeduplicated.WithLabelValues("sensor_data").Inc()
			continue
		}

		reading := domain.NewSensorData(shipment.ID, timestamp, *report.Temperature, report.Humidity, report.Location)
		if err := s.sensorRepo.Append(ctx, reading); err != nil {
			return err
		}
		s.metrics.RowsStored.WithLabelValues("sensor_data").Inc()

		if err := s.recordExcursion(ctx, shipment, reading, bounds); err != nil {
			return err
		}
	}
	return nil
}

func (s *IngestService) recordExcursion(ctx context.Context, shipment *domain.Shipment, reading *domain.SensorData, bounds domain.TemperatureBounds) error {
	alertType, excursion := bounds.Evaluate(reading.Temperature)
	if !excursion {
		return nil
	}

	alert := domain.NewTemperatureAlert(shipment.ID, reading.Timestamp, reading.Temperature, alertType)
	if err := s.alertRepo.Append(ctx, alert); err != nil {
		return err
	}

	status := excursionStatus(alertType, reading.Temperature)
	event := domain.NewStatusHistory(shipment.ID, status, reading.Location, reading.Timestamp)
	if err := s.historyRepo.Append(ctx, event); err != nil {
		return err
	}

	s.metrics.AlertsEmitted.WithLabelValues(string(alertType)).Inc()
	s.logger.Info("Temperature excursion during ingestion",
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.Float64("temperature", reading.Temperature),
		zap.String("alert_type", string(alertType)),
	)
	return nil
}

func excursionStatus(alertType domain.AlertType, temperature float64) string {
	if alertType == domain.AlertBelowMin {
		return fmt.Sprintf("Temperature excursion below minimum: %v°C", temperature)
	}
	return fmt.Sprintf("Temperature excursion above maximum: %v°C", temperature)
}

func ingestOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "NOT_FOUND":
			return "not_found"
		case "UPSTREAM_ERROR":
			return "upstream_error"
		case "INVALID_INPUT":
			return "invalid_input"
		}
	}
	return "error"
}
