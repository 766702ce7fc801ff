package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/coldchain/backend/internal/domain/tracking"
	"github.com/coldchain/backend/internal/infrastructure/config"
)

// OnAssetClient calls the OnAsset Insight API for Sentry 500 sensors
type OnAssetClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOnAssetClient creates an OnAsset client from the provider configuration
func NewOnAssetClient(cfg config.ProvidersConfig, logger *zap.Logger) *OnAssetClient {
	return &OnAssetClient{
		baseURL: cfg.OnAssetBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger.Named("onasset"),
	}
}

type onassetReportsResponse struct {
	Reports []struct {
		Timestamp   string   `json:"timestamp"`
		Location    *string  `json:"location"`
		Temperature *float64 `json:"temperature"`
		Humidity    *float64 `json:"humidity"`
	} `json:"reports"`
}

// FetchReports returns sensor readings recorded between from and to
func (c *OnAssetClient) FetchReports(ctx context.Context, token, sensorID string, from, to time.Time) ([]tracking.SensorReport, error) {
	url := fmt.Sprintf("%s/rest/2/sentry500s/%s/reports?from=%s&to=%s",
		c.baseURL, sensorID, formatWindowTime(from), formatWindowTime(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("onasset: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onasset: request failed: %v: %w", err, shared.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("OnAsset returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("sensor_id", sensorID),
		)
		return nil, fmt.Errorf("onasset: unexpected status %d: %w", resp.StatusCode, shared.ErrUpstream)
	}

	var parsed onassetReportsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("onasset: failed to decode response: %w", err)
	}

	reports := make([]tracking.SensorReport, 0, len(parsed.Reports))
	for _, r := range parsed.Reports {
		reports = append(reports, tracking.SensorReport{
			Timestamp:   r.Timestamp,
			Location:    r.Location,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
		})
	}
	return reports, nil
}

// Ensure OnAssetClient implements SensorProvider
var _ tracking.SensorProvider = (*OnAssetClient)(nil)
