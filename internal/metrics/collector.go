// Package metrics собирает метрики Prometheus для API и ассистента.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector хранит метрики приложения в собственном реестре.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	Responses    *prometheus.CounterVec
	Optimized    prometheus.Counter
}

// NewCollector создает и регистрирует метрики с указанным пространством имен.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		Responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assistant_responses_total",
				Help:      "Assistant responses by kind",
			},
			[]string{"kind"},
		),
		Optimized: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "itinerary_optimizations_total",
				Help:      "Completed itinerary optimizations",
			},
		),
	}
	c.registry.MustRegister(c.HTTPRequests, c.Responses, c.Optimized)
	return c
}

// ObserveResponse учитывает ответ ассистента указанной категории.
func (c *Collector) ObserveResponse(kind string) {
	if c == nil {
		return
	}
	c.Responses.WithLabelValues(kind).Inc()
}

// ObserveOptimization учитывает завершенную оптимизацию маршрута.
func (c *Collector) ObserveOptimization() {
	if c == nil {
		return
	}
	c.Optimized.Inc()
}

// Handler отдает метрики в формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
