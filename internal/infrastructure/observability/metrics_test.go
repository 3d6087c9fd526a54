package observability_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/infrastructure/observability"
)

func TestObserveSearch_ClasificaResultados(t *testing.T) {
	m := observability.NewMetrics("giftcert")

	m.ObserveSearch("gift_certificate", 3, nil)
	m.ObserveSearch("gift_certificate", 0, nil)
	m.ObserveSearch("gift_certificate", 0, fmt.Errorf("%w: size", domain.ErrInvalidParameter))
	m.ObserveSearch("tag", 0, errors.New("conexión rechazada"))

	n, err := testutil.GatherAndCount(m.Registry(), "giftcert_search_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "una serie por combinación entidad/resultado")

	n, err = testutil.GatherAndCount(m.Registry(), "giftcert_search_items_found")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "solo las búsquedas exitosas alimentan el histograma")
}

func TestHandler_ExponeMetricasHTTP(t *testing.T) {
	m := observability.NewMetrics("giftcert")
	m.ObserveRequest(http.MethodGet, "/api/certificates", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `giftcert_http_requests_total{method="GET",route="/api/certificates",status="200"} 1`)
}
