package transport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/fast-json-api/api"
	"github.com/raywall/fast-json-api/pkg/adapter"
	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/rs/zerolog"
)

// LambdaHandler adapta eventos do API Gateway para o pipeline da API
type LambdaHandler struct {
	pipeline api.PipelineInterface
	logger   zerolog.Logger
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(pipeline api.PipelineInterface, logger zerolog.Logger) *LambdaHandler {
	return &LambdaHandler{pipeline: pipeline, logger: logger}
}

// Handle processa a requisição Lambda. Erros do pipeline viram respostas
// JSON; o erro devolvido ao runtime é sempre nil.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := correlationID(req.Headers)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := h.logger.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	raw, err := adapter.FromAPIGateway(req)

	var resp api.Response
	if err != nil {
		resp = h.pipeline.Reject(ctx, raw, envelope.MalformedPayload(err))
	} else {
		resp = h.pipeline.Handle(ctx, raw)
	}

	latency := time.Since(start).Milliseconds()
	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", resp.Status).
		Int64("latency_ms", latency).
		Msg("lambda request completed")

	return events.APIGatewayProxyResponse{
		StatusCode: resp.Status,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			HeaderCorrelationID: corrID,
			HeaderLatency:       fmt.Sprintf("%d", latency),
		},
		Body: string(resp.Body),
	}, nil
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, HeaderCorrelationID) {
			return v
		}
	}
	return ""
}
