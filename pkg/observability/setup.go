package observability

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/fast-json-api/pkg/config"
	"github.com/raywall/fast-json-api/pkg/metrics"
)

// NoopProvider é um placeholder para quando métricas estão desabilitadas.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }

// DatadogProvider adapta a lib oficial do Datadog para nossa interface.
type DatadogProvider struct {
	client statsd.ClientInterface
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// Close descarrega o buffer do cliente statsd.
func (d *DatadogProvider) Close() error {
	return d.client.Close()
}

// Metrics agrupa o provedor montado a partir da configuração e, quando o
// Prometheus está habilitado, o handler de scraping.
type Metrics struct {
	Provider metrics.Provider
	Handler  http.Handler

	closers []io.Closer
}

// Close libera os clientes que mantêm buffer ou conexão.
func (m *Metrics) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// SetupMetrics inicializa os provedores habilitados. Nenhum habilitado
// resulta em NoopProvider; mais de um resulta em metrics.Multi.
func SetupMetrics(cfg config.MetricsConf) (*Metrics, error) {
	m := &Metrics{}
	var providers metrics.Multi

	if cfg.Datadog.Enabled {
		opts := []statsd.Option{
			statsd.WithNamespace(cfg.Datadog.Namespace),
		}

		client, err := statsd.New(cfg.Datadog.Addr, opts...)
		if err != nil {
			return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
		}

		dd := &DatadogProvider{client: client}
		providers = append(providers, dd)
		m.closers = append(m.closers, dd)
	}

	if cfg.Prometheus.Enabled {
		prom := NewPrometheusProvider(cfg.Prometheus.Namespace)
		providers = append(providers, prom)
		m.Handler = prom.Handler()
	}

	switch len(providers) {
	case 0:
		m.Provider = &NoopProvider{}
	case 1:
		m.Provider = providers[0]
	default:
		m.Provider = providers
	}
	return m, nil
}
