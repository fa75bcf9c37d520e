package logger

import (
	"context"
	"time"

	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/rs/zerolog"
)

// RequestLine registra uma linha por requisição com método, caminho, modelo
// e action, logo após a normalização. Implementa api.Hook.
type RequestLine struct {
	logger zerolog.Logger
}

func NewRequestLine(logger zerolog.Logger) *RequestLine {
	return &RequestLine{logger: logger}
}

func (rl *RequestLine) OnRequest(ctx context.Context, env envelope.Envelope) {
	rl.from(ctx).Info().
		Str("method", env.Verb()).
		Str("path", env.Path()).
		Str("model", env.Model()).
		Str("action", env.Action()).
		Msg("api request")
}

func (rl *RequestLine) OnResponse(ctx context.Context, env envelope.Envelope, status int, latency time.Duration) {
	err := env.Err()
	if err == nil {
		return
	}
	rl.from(ctx).Debug().
		Str("kind", string(err.Kind)).
		Int("status", status).
		Dur("latency", latency).
		Msg(err.Message)
}

// from prefere o logger da requisição, que já carrega o correlation_id.
func (rl *RequestLine) from(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &rl.logger
}
