package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("test_app")

	require.NoError(t, err)
	assert.NotNil(t, provider)
	assert.NotNil(t, provider.MeterProvider())
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProvider_Shutdown(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	assert.NoError(t, provider.Shutdown(context.Background()))
}
