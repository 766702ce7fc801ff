// Package carrier implements HTTP clients for the external tracking and
// sensor providers.
package carrier

import (
	"bytes"
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

// maxResponseSize is the maximum allowed provider response size (10MB)
const maxResponseSize = 10 * 1024 * 1024

// FedExClient calls the FedEx Track API
type FedExClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFedExClient creates a FedEx client from the provider configuration
func NewFedExClient(cfg config.ProvidersConfig, logger *zap.Logger) *FedExClient {
	return &FedExClient{
		baseURL: cfg.FedExBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger.Named("fedex"),
	}
}

type fedexTrackRequest struct {
	IncludeDetailedScans bool                `json:"includeDetailedScans"`
	TrackingInfo         []fedexTrackingInfo `json:"trackingInfo"`
}

type fedexTrackingInfo struct {
	TrackingNumberInfo fedexTrackingNumberInfo `json:"trackingNumberInfo"`
}

type fedexTrackingNumberInfo struct {
	TrackingNumber string `json:"trackingNumber"`
}

type fedexTrackResponse struct {
	Output struct {
		CompleteTrackResults []struct {
			OriginLocation      fedexLocation `json:"originLocation"`
			DestinationLocation fedexLocation `json:"destinationLocation"`
			LatestStatusDetail  struct {
				StatusByLocale string `json:"statusByLocale"`
			} `json:"latestStatusDetail"`
			ScanEvents []struct {
				Status       string `json:"status"`
				ScanLocation struct {
					City *string `json:"city"`
				} `json:"scanLocation"`
				DateScan string `json:"dateScan"`
			} `json:"scanEvents"`
		} `json:"completeTrackResults"`
	} `json:"output"`
}

type fedexLocation struct {
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

// FetchTracking returns the tracking result for one tracking number
func (c *FedExClient) FetchTracking(ctx context.Context, token, trackingNumber string) (*tracking.TrackInfo, error) {
	payload := fedexTrackRequest{
		IncludeDetailedScans: true,
		TrackingInfo: []fedexTrackingInfo{
			{TrackingNumberInfo: fedexTrackingNumberInfo{TrackingNumber: trackingNumber}},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("fedex: failed to encode request: %w", err)
	}

	url := c.baseURL + "/track/v1/trackingnumbers"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("fedex: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fedex: request failed: %v: %w", err, shared.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("FedEx returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("tracking_number", trackingNumber),
		)
		return nil, fmt.Errorf("fedex: unexpected status %d: %w", resp.StatusCode, shared.ErrUpstream)
	}

	var parsed fedexTrackResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("fedex: failed to decode response: %w", err)
	}

	results := parsed.Output.CompleteTrackResults
	if len(results) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No tracking results from FedEx")
	}
	result := results[0]

	info := &tracking.TrackInfo{
		Origin:        result.OriginLocation.Address.City,
		Destination:   result.DestinationLocation.Address.City,
		CurrentStatus: result.LatestStatusDetail.StatusByLocale,
		ScanEvents:    make([]tracking.ScanEvent, 0, len(result.ScanEvents)),
	}
	for _, event := range result.ScanEvents {
		info.ScanEvents = append(info.ScanEvents, tracking.ScanEvent{
			Status:    event.Status,
			Location:  event.ScanLocation.City,
			Timestamp: event.DateScan,
		})
	}
	return info, nil
}

// providerTimeLayout is the ISO-8601 layout used for provider query windows
const providerTimeLayout = "2006-01-02T15:04:05.000000"

// formatWindowTime renders a UTC instant the way the providers expect
func formatWindowTime(t time.Time) string {
	return t.UTC().Format(providerTimeLayout) + "Z"
}

// Ensure FedExClient implements TrackingProvider
var _ tracking.TrackingProvider = (*FedExClient)(nil)
