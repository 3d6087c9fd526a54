// Package observability expone métricas Prometheus del API y del motor de búsqueda.
package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// Resultados posibles de una búsqueda.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics contadores e histogramas sobre un registry propio (no el global).
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	searches        *prometheus.CounterVec
	searchFound     *prometheus.HistogramVec
}

// NewMetrics registra los colectores bajo el namespace dado.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Búsquedas por entidad y resultado.",
		}, []string{"entity", "outcome"}),
		searchFound: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "items_found",
			Help:      "Cantidad de registros que cumplen el filtro.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"entity"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.requestDuration, m.searches, m.searchFound,
	)
	return m
}

// ObserveSearch clasifica el resultado de una búsqueda.
func (m *Metrics) ObserveSearch(entity search.EntityType, found int, err error) {
	e := string(entity)
	switch {
	case err == nil && found == 0:
		m.searches.WithLabelValues(e, OutcomeEmpty).Inc()
	case err == nil:
		m.searches.WithLabelValues(e, OutcomeOK).Inc()
	case errors.Is(err, domain.ErrInvalidParameter), errors.Is(err, domain.ErrNotFound):
		m.searches.WithLabelValues(e, OutcomeRejected).Inc()
		return
	default:
		m.searches.WithLabelValues(e, OutcomeFailed).Inc()
		return
	}
	m.searchFound.WithLabelValues(e).Observe(float64(found))
}

// ObserveRequest registra una petición HTTP ya respondida.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry acceso al registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
