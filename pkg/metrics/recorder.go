package metrics

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/rs/zerolog/log"
)

// RequestRecorder publica contadores e latência de cada requisição do
// pipeline. Implementa api.Hook.
type RequestRecorder struct {
	provider Provider
	inFlight atomic.Int64
}

func NewRequestRecorder(provider Provider) *RequestRecorder {
	return &RequestRecorder{provider: provider}
}

// OnRequest publica o gauge de requisições em andamento.
func (r *RequestRecorder) OnRequest(ctx context.Context, env envelope.Envelope) {
	r.send(ctx, r.provider.Gauge(MetricInFlight, float64(r.inFlight.Add(1)), nil))
}

func (r *RequestRecorder) OnResponse(ctx context.Context, env envelope.Envelope, status int, latency time.Duration) {
	tags := []string{
		"model:" + tagValue(env.Model()),
		"action:" + tagValue(env.Action()),
		"method:" + env.Verb(),
		fmt.Sprintf("status:%d", status),
	}

	r.send(ctx, r.provider.Count(MetricRequests, 1, tags))
	r.send(ctx, r.provider.Histogram(MetricLatency, float64(latency.Milliseconds()), tags))

	if err := env.Err(); err != nil {
		r.send(ctx, r.provider.Count(MetricErrors, 1, append(tags, "kind:"+string(err.Kind))))
	}

	r.send(ctx, r.provider.Gauge(MetricInFlight, float64(r.inFlight.Add(-1)), nil))
}

// send nunca interrompe a requisição: falha de métrica vira log.
func (r *RequestRecorder) send(ctx context.Context, err error) {
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("falha ao enviar métrica")
	}
}

func tagValue(v string) string {
	if v == "" {
		return "none"
	}
	return v
}
