package tracking

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/coldchain/backend/internal/domain/shared"
	domain "github.com/coldchain/backend/internal/domain/tracking"
	"github.com/coldchain/backend/internal/infrastructure/metrics"
)

// ShipmentService handles shipment CRUD and manual telemetry appends
type ShipmentService struct {
	shipmentRepo domain.ShipmentRepository
	historyRepo  domain.StatusHistoryRepository
	sensorRepo   domain.SensorDataRepository
	alertRepo    domain.TemperatureAlertRepository
	configSvc    *ConfigService
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	shipmentRepo domain.ShipmentRepository,
	historyRepo domain.StatusHistoryRepository,
	sensorRepo domain.SensorDataRepository,
	alertRepo domain.TemperatureAlertRepository,
	configSvc *ConfigService,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		historyRepo:  historyRepo,
		sensorRepo:   sensorRepo,
		alertRepo:    alertRepo,
		configSvc:    configSvc,
		clock:        clock,
		metrics:      m,
		logger:       logger.Named("shipment_service"),
	}
}

// Create registers a new shipment. Duplicate tracking numbers are rejected.
func (s *ShipmentService) Create(ctx context.Context, req CreateShipmentRequest) (*CreateShipmentResponse, error) {
	exists, err := s.shipmentRepo.ExistsByTrackingNumber(ctx, req.TrackingNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shipment already exists")
	}

	shipment, err := domain.NewShipment(req.TrackingNumber, req.Origin, req.Destination, req.CurrentStatus)
	if err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	return &CreateShipmentResponse{
		ID:             shipment.ID.String(),
		TrackingNumber: shipment.TrackingNumber,
	}, nil
}

// GetByTrackingNumber returns the shipment identified by trackingNumber
func (s *ShipmentService) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return shipmentToResponse(shipment), nil
}

// ListStatus returns a shipment's status history, timestamp ascending
func (s *ShipmentService) ListStatus(ctx context.Context, trackingNumber string) ([]StatusEventResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	events, err := s.historyRepo.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, err
	}
	return statusToResponse(events), nil
}

// AppendStatus adds a status event to a shipment and promotes it to the
// shipment's current status. Unlike ingestion, direct appends are never
// deduplicated.
func (s *ShipmentService) AppendStatus(ctx context.Context, trackingNumber string, req AppendStatusRequest) error {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return err
	}

	timestamp := s.clock.Now().UTC()
	if req.Timestamp != nil && *req.Timestamp != "" {
		timestamp, err = parseClientTimestamp(*req.Timestamp)
		if err != nil {
			return err
		}
	}

	event := domain.NewStatusHistory(shipment.ID, req.Status, req.Location, timestamp)
	if err := s.historyRepo.Append(ctx, event); err != nil {
		return err
	}

	shipment.SetCurrentStatus(req.Status)
	return s.shipmentRepo.Save(ctx, shipment)
}

// ListSensor returns a shipment's sensor readings, timestamp ascending
func (s *ShipmentService) ListSensor(ctx context.Context, trackingNumber string) ([]SensorReadingResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	readings, err := s.sensorRepo.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, err
	}
	return readingsToResponse(readings), nil
}

// AppendSensorReading stores a reading and evaluates it against the stored
// temperature range. An excursion produces an alert row only; the status
// history is untouched on this path.
func (s *ShipmentService) AppendSensorReading(ctx context.Context, trackingNumber string, req AppendSensorRequest) error {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return err
	}

	timestamp := s.clock.Now().UTC()
	if req.Timestamp != nil && *req.Timestamp != "" {
		timestamp, err = parseClientTimestamp(*req.Timestamp)
		if err != nil {
			return err
		}
	}

	reading := domain.NewSensorData(shipment.ID, timestamp, *req.Temperature, req.Humidity, req.Location)
	if err := s.sensorRepo.Append(ctx, reading); err != nil {
		return err
	}

	bounds, err := s.configSvc.ResolveBounds(ctx, nil, nil)
	if err != nil {
		return err
	}
	if alertType, excursion := bounds.Evaluate(*req.Temperature); excursion {
		alert := domain.NewTemperatureAlert(shipment.ID, timestamp, *req.Temperature, alertType)
		if err := s.alertRepo.Append(ctx, alert); err != nil {
			return err
		}
		s.metrics.AlertsEmitted.WithLabelValues(string(alertType)).Inc()
		s.logger.Info("Temperature excursion on manual reading",
			zap.String("tracking_number", trackingNumber),
			zap.Float64("temperature", *req.Temperature),
			zap.String("alert_type", string(alertType)),
		)
	}
	return nil
}

// ListAlerts returns a shipment's temperature alerts, timestamp ascending
func (s *ShipmentService) ListAlerts(ctx context.Context, trackingNumber string) ([]AlertResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	alerts, err := s.alertRepo.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, err
	}
	return alertsToResponse(alerts), nil
}
