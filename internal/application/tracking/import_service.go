package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	domain "github.com/coldchain/backend/internal/domain/tracking"
)

// maxImportResponseSize caps the shipment feed response (10MB)
const maxImportResponseSize = 10 * 1024 * 1024

// ImportService bulk-imports shipments from an external JSON feed
type ImportService struct {
	shipmentRepo domain.ShipmentRepository
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(shipmentRepo domain.ShipmentRepository, httpClient *http.Client, logger *zap.Logger) *ImportService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ImportService{
		shipmentRepo: shipmentRepo,
		httpClient:   httpClient,
		logger:       logger.Named("import_service"),
	}
}

type shipmentFeedRecord struct {
	TrackingNumber string `json:"tracking_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	CurrentStatus  string `json:"current_status"`
}

// FetchShipments downloads a JSON array of shipments from apiURL and stores
// the ones whose tracking numbers are not yet known. Existing shipments are
// left untouched.
func (s *ImportService) FetchShipments(ctx context.Context, apiURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build shipment feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch shipment feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shipment feed returned status %d", resp.StatusCode)
	}

	var records []shipmentFeedRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxImportResponseSize)).Decode(&records); err != nil {
		return fmt.Errorf("failed to decode shipment feed: %w", err)
	}

	imported := 0
	for _, record := range records {
		exists, err := s.shipmentRepo.ExistsByTrackingNumber(ctx, record.TrackingNumber)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		shipment, err := domain.NewShipment(record.TrackingNumber, record.Origin, record.Destination, record.CurrentStatus)
		if err != nil {
			return fmt.Errorf("shipment feed record %q: %w", record.TrackingNumber, err)
		}
		if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
			return err
		}
		imported++
	}

	s.logger.Info("Shipment feed imported",
		zap.String("api_url", apiURL),
		zap.Int("total", len(records)),
		zap.Int("imported", imported),
	)
	return nil
}
