package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsRoutePattern(t *testing.T) {
	h := NewHandler(newTestServices(), config.Server{}, logger.Nop())
	router := h.Init()

	do(router, http.MethodGet, "/produk/1", "")
	do(router, http.MethodGet, "/produk/2", "")
	do(router, http.MethodGet, "/produk/abc", "")
	do(router, http.MethodGet, "/missing", "")

	expected := `
# HELP backend_mobile_http_requests_total Total number of HTTP requests handled.
# TYPE backend_mobile_http_requests_total counter
backend_mobile_http_requests_total{method="GET",route="/produk/{id}",status="200"} 2
backend_mobile_http_requests_total{method="GET",route="/produk/{id}",status="400"} 1
backend_mobile_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(h.metrics.Registry(), strings.NewReader(expected),
		"backend_mobile_http_requests_total")
	require.NoError(t, err)
}

func TestWithMetrics_SkipsScrapes(t *testing.T) {
	h := NewHandler(newTestServices(), config.Server{}, logger.Nop())
	router := h.Init()

	rr := do(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)

	count, err := testutil.GatherAndCount(h.metrics.Registry(), "backend_mobile_http_requests_total")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, rr.Body.String(), "backend_mobile_http_inflight_requests")
}
