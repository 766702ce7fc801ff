package carrier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coldchain/backend/internal/domain/shared"
	"github.com/coldchain/backend/internal/infrastructure/config"
)

func newOnAssetForTest(t *testing.T, handler http.HandlerFunc) *OnAssetClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOnAssetClient(config.ProvidersConfig{
		OnAssetBaseURL: server.URL,
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestOnAssetClientFetchReports(t *testing.T) {
	from := time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("parses reports with optional fields", func(t *testing.T) {
		client := newOnAssetForTest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rest/2/sentry500s/SENTRY-42/reports", r.URL.Path)
			assert.Equal(t, "Bearer onasset-token", r.Header.Get("Authorization"))
			assert.Equal(t, "2026-02-22T10:00:00.000000Z", r.URL.Query().Get("from"))
			assert.Equal(t, "2026-03-01T10:00:00.000000Z", r.URL.Query().Get("to"))

			w.Write([]byte(`{
				"reports": [
					{"timestamp": "2026-03-01T09:00:00Z", "temperature": 4.2, "humidity": 45.0, "location": "35.1,-90.0"},
					{"timestamp": "2026-03-01T09:05:00Z", "temperature": 9.1}
				]
			}`))
		})

		reports, err := client.FetchReports(context.Background(), "onasset-token", "SENTRY-42", from, to)
		require.NoError(t, err)
		require.Len(t, reports, 2)

		require.NotNil(t, reports[0].Temperature)
		assert.Equal(t, 4.2, *reports[0].Temperature)
		require.NotNil(t, reports[0].Humidity)
		assert.Equal(t, 45.0, *reports[0].Humidity)
		require.NotNil(t, reports[0].Location)
		assert.Equal(t, "35.1,-90.0", *reports[0].Location)

		assert.Nil(t, reports[1].Humidity)
		assert.Nil(t, reports[1].Location)
	})

	t.Run("empty body yields no reports", func(t *testing.T) {
		client := newOnAssetForTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		reports, err := client.FetchReports(context.Background(), "onasset-token", "SENTRY-42", from, to)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("non-2xx maps to upstream error", func(t *testing.T) {
		client := newOnAssetForTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.FetchReports(context.Background(), "bad-token", "SENTRY-42", from, to)
		assert.ErrorIs(t, err, shared.ErrUpstream)
	})
}
