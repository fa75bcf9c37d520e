package observability

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Buckets de latência em milissegundos (1ms a ~8s).
var latencyBuckets = prometheus.ExponentialBuckets(1, 2, 14)

// PrometheusProvider traduz a interface de tags "chave:valor" para vetores
// Prometheus. Cada nome de métrica é criado na primeira chamada e fixa o
// conjunto de labels daí em diante.
type PrometheusProvider struct {
	registry  *prometheus.Registry
	namespace string

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

func NewPrometheusProvider(namespace string) *PrometheusProvider {
	return &PrometheusProvider{
		registry:   prometheus.NewRegistry(),
		namespace:  sanitize(namespace),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// Handler expõe o registro no formato de exposição do Prometheus.
func (p *PrometheusProvider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *PrometheusProvider) Count(name string, value float64, tags []string) error {
	if value < 0 {
		return fmt.Errorf("contador %s não aceita valor negativo: %v", name, value)
	}
	labels := parseTags(tags)

	p.mu.Lock()
	vec, ok := p.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      sanitize(name) + "_total",
			Help:      "Contador " + name,
		}, labelNames(labels))
		if err := p.registry.Register(vec); err != nil {
			p.mu.Unlock()
			return err
		}
		p.counters[name] = vec
	}
	p.mu.Unlock()

	c, err := vec.GetMetricWith(labels)
	if err != nil {
		return err
	}
	c.Add(value)
	return nil
}

func (p *PrometheusProvider) Gauge(name string, value float64, tags []string) error {
	labels := parseTags(tags)

	p.mu.Lock()
	vec, ok := p.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      sanitize(name),
			Help:      "Gauge " + name,
		}, labelNames(labels))
		if err := p.registry.Register(vec); err != nil {
			p.mu.Unlock()
			return err
		}
		p.gauges[name] = vec
	}
	p.mu.Unlock()

	g, err := vec.GetMetricWith(labels)
	if err != nil {
		return err
	}
	g.Set(value)
	return nil
}

func (p *PrometheusProvider) Histogram(name string, value float64, tags []string) error {
	labels := parseTags(tags)

	p.mu.Lock()
	vec, ok := p.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      sanitize(name),
			Help:      "Histograma " + name,
			Buckets:   latencyBuckets,
		}, labelNames(labels))
		if err := p.registry.Register(vec); err != nil {
			p.mu.Unlock()
			return err
		}
		p.histograms[name] = vec
	}
	p.mu.Unlock()

	h, err := vec.GetMetricWith(labels)
	if err != nil {
		return err
	}
	h.Observe(value)
	return nil
}

// parseTags converte "chave:valor" em labels; tag sem ":" vira "tag=true".
func parseTags(tags []string) prometheus.Labels {
	labels := prometheus.Labels{}
	for _, tag := range tags {
		k, v, found := strings.Cut(tag, ":")
		if !found {
			v = "true"
		}
		labels[sanitize(k)] = v
	}
	return labels
}

func labelNames(labels prometheus.Labels) []string {
	names := make([]string, 0, len(labels))
	for k := range labels {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// sanitize troca qualquer caractere fora de [a-zA-Z0-9_] por "_".
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimRight(s, "."))
}
