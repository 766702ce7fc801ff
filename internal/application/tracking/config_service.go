package tracking

import (
	"context"
	"fmt"
	"strconv"

	domain "github.com/coldchain/backend/internal/domain/tracking"
)

// ConfigService handles the stored temperature range
type ConfigService struct {
	configRepo domain.ConfigRepository
}

// NewConfigService creates a new ConfigService
func NewConfigService(configRepo domain.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// GetRange returns the stored temperature range. A missing key reads as nil.
func (s *ConfigService) GetRange(ctx context.Context) (*TemperatureRangeResponse, error) {
	min, err := s.getBound(ctx, domain.ConfigKeyMinTemperature)
	if err != nil {
		return nil, err
	}
	max, err := s.getBound(ctx, domain.ConfigKeyMaxTemperature)
	if err != nil {
		return nil, err
	}
	return &TemperatureRangeResponse{
		MinTemperature: min,
		MaxTemperature: max,
	}, nil
}

// SetRange replaces both stored bounds. Values are stored as strings and
// parsed on read; min > max is accepted as configured.
func (s *ConfigService) SetRange(ctx context.Context, req SetTemperatureRangeRequest) error {
	if err := s.configRepo.Set(ctx, domain.ConfigKeyMinTemperature, formatBound(*req.MinTemperature)); err != nil {
		return err
	}
	return s.configRepo.Set(ctx, domain.ConfigKeyMaxTemperature, formatBound(*req.MaxTemperature))
}

// ResolveBounds returns the effective temperature bounds for an evaluation.
// Each override takes precedence over the stored value for its own side.
func (s *ConfigService) ResolveBounds(ctx context.Context, overrideMin, overrideMax *float64) (domain.TemperatureBounds, error) {
	bounds := domain.TemperatureBounds{Min: overrideMin, Max: overrideMax}

	if bounds.Min == nil {
		min, err := s.getBound(ctx, domain.ConfigKeyMinTemperature)
		if err != nil {
			return domain.TemperatureBounds{}, err
		}
		bounds.Min = min
	}
	if bounds.Max == nil {
		max, err := s.getBound(ctx, domain.ConfigKeyMaxTemperature)
		if err != nil {
			return domain.TemperatureBounds{}, err
		}
		bounds.Max = max
	}
	return bounds, nil
}

func (s *ConfigService) getBound(ctx context.Context, key string) (*float64, error) {
	value, found, err := s.configRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("stored %s is not a number: %w", key, err)
	}
	return &parsed, nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
