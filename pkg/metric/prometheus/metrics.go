package prometheus

import (
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/billup/billup-web/pkg/metric"
)

type Metrics interface {
	metric.Metrics
	Handler() http.Handler
}

// Collectors are created on first use; the label names of the first call fix the metric schema.
type collectorSet struct {
	namespace string
	registry  *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]registeredCounter
	histograms map[string]registeredHistogram
}

type (
	registeredCounter struct {
		vec    *prometheus.CounterVec
		labels []string
	}

	registeredHistogram struct {
		vec    *prometheus.HistogramVec
		labels []string
	}
)

type metrics struct {
	set    *collectorSet
	labels metric.Labels
}

func New(namespace string) Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return metrics{
		set: &collectorSet{
			namespace:  namespace,
			registry:   registry,
			counters:   make(map[string]registeredCounter),
			histograms: make(map[string]registeredHistogram),
		},
		labels: metric.Labels{},
	}
}

func (m metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.set.registry, promhttp.HandlerOpts{})
}

func (m metrics) With(labels metric.Labels) metric.Metrics {
	merged := make(metric.Labels, len(m.labels)+len(labels))
	maps.Copy(merged, m.labels)
	maps.Copy(merged, labels)

	return metrics{set: m.set, labels: merged}
}

func (m metrics) Increment(key string) {
	counter, ok := m.set.counter(key, labelNames(m.labels))
	if !ok {
		return
	}

	counter.With(prometheus.Labels(m.labels)).Inc()
}

func (m metrics) Duration(key string, duration time.Duration) {
	histogram, ok := m.set.histogram(key, labelNames(m.labels))
	if !ok {
		return
	}

	histogram.With(prometheus.Labels(m.labels)).Observe(duration.Seconds())
}

func (c *collectorSet) counter(name string, labels []string) (*prometheus.CounterVec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if registered, ok := c.counters[name]; ok {
		return registered.vec, slices.Equal(registered.labels, labels)
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      name,
	}, labels)
	if err := c.registry.Register(counter); err != nil {
		return nil, false
	}

	c.counters[name] = registeredCounter{vec: counter, labels: labels}
	return counter, true
}

func (c *collectorSet) histogram(name string, labels []string) (*prometheus.HistogramVec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if registered, ok := c.histograms[name]; ok {
		return registered.vec, slices.Equal(registered.labels, labels)
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Buckets:   prometheus.DefBuckets,
	}, labels)
	if err := c.registry.Register(histogram); err != nil {
		return nil, false
	}

	c.histograms[name] = registeredHistogram{vec: histogram, labels: labels}
	return histogram, true
}

func labelNames(labels metric.Labels) []string {
	return slices.Sorted(maps.Keys(labels))
}
