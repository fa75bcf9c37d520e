package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por Prometheus ou Logging sem alterar o pipeline.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

const (
	MetricRequests = "api.requests"
	MetricLatency  = "api.latency_ms"
	MetricErrors   = "api.errors"
	MetricInFlight = "api.in_flight"
)
