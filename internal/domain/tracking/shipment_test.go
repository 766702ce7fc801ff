package tracking

import (
	"strings"
	"testing"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment", func(t *testing.T) {
		s, err := NewShipment("794843185271", "Memphis", "Oakland", "In transit")
		require.NoError(t, err)
		assert.Equal(t, "794843185271", s.TrackingNumber)
		assert.Equal(t, "Memphis", s.Origin)
		assert.Equal(t, "Oakland", s.Destination)
		assert.Equal(t, "In transit", s.CurrentStatus)
		assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("empty tracking number", func(t *testing.T) {
		_, err := NewShipment("  ", "", "", "")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TRACKING_NUMBER", domainErr.Code)
	})

	t.Run("tracking number too long", func(t *testing.T) {
		_, err := NewShipment(strings.Repeat("9", 65), "", "", "")
		assert.Error(t, err)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		s, err := NewShipment(" 794843185271 ", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "794843185271", s.TrackingNumber)
	})
}

func TestShipmentUpdateRoute(t *testing.T) {
	s, err := NewShipment("794843185271", "Memphis", "Oakland", "Label created")
	require.NoError(t, err)

	s.UpdateRoute("Memphis", "Seattle", "Delivered")
	assert.Equal(t, "Seattle", s.Destination)
	assert.Equal(t, "Delivered", s.CurrentStatus)
}
