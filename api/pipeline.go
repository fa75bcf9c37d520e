package api

import (
	"context"
	"time"

	"github.com/raywall/fast-json-api/pkg/adapter"
	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/raywall/fast-json-api/pkg/models"
	"github.com/raywall/fast-json-api/pkg/responder"
)

// PipelineInterface realiza a abstração da estrutura Pipeline.
//
// Os transportes (HTTP e Lambda) dependem apenas deste contrato.
type PipelineInterface interface {
	// Handle executa o pipeline completo para uma requisição crua.
	Handle(ctx context.Context, raw adapter.RawRequest) Response
	// Reject renderiza um erro detectado pelo transporte antes da
	// normalização (ex: corpo grande demais), acionando os mesmos hooks.
	Reject(ctx context.Context, raw adapter.RawRequest, err *envelope.Error) Response
}

// Hook é o ponto de observabilidade do pipeline.
//
// OnRequest é chamado uma vez, logo após a normalização. OnResponse é chamado
// uma vez, depois da renderização, com o status final e a latência.
type Hook interface {
	OnRequest(ctx context.Context, env envelope.Envelope)
	OnResponse(ctx context.Context, env envelope.Envelope, status int, latency time.Duration)
}

// Response é o resultado renderizado, pronto para o transporte.
type Response struct {
	// Status é o código HTTP.
	Status int
	// Body é o envelope JSON serializado.
	Body []byte
}

// Pipeline liga Adapter, Registry, Dispatcher e Responder.
//
// Não guarda estado por requisição: uma única instância atende qualquer
// número de requisições concorrentes.
type Pipeline struct {
	// registry resolve o modelo de cada requisição.
	registry *models.Registry
	// hooks são chamados em ordem de registro.
	hooks []Hook
}

// New cria uma nova instância do Pipeline.
//
// Parâmetros:
//
//	registry: O registro de modelos já populado.
//	hooks: Hooks de observabilidade (log, métricas).
//
// Exemplo:
//
//	p := api.New(models.Default(), logger.NewRequestLine(log))
func New(registry *models.Registry, hooks ...Hook) *Pipeline {
	return &Pipeline{registry: registry, hooks: hooks}
}

// Normalize executa o Adapter. É uma função pura da requisição.
func (p *Pipeline) Normalize(raw adapter.RawRequest) envelope.Envelope {
	return adapter.Basic(raw)
}

// Process executa Registry, Dispatcher e Responder sobre um envelope.
//
// Cada estágio só roda se o anterior não produziu erro; o primeiro erro é
// renderizado sem alterações.
func (p *Pipeline) Process(env envelope.Envelope) (int, []byte) {
	if err := env.Err(); err != nil {
		return responder.Render(nil, err)
	}

	model, err := p.registry.Resolve(env.Model())
	if err != nil {
		return responder.Render(nil, err)
	}

	return responder.Render(model.Serve(env))
}

// Handle executa o pipeline completo e aciona os hooks.
func (p *Pipeline) Handle(ctx context.Context, raw adapter.RawRequest) Response {
	start := time.Now()
	env := p.Normalize(raw)
	p.notifyRequest(ctx, env)

	status, body := p.Process(env)

	p.notifyResponse(ctx, env, status, time.Since(start))
	return Response{Status: status, Body: body}
}

// Reject renderiza err para a requisição sem executar os estágios.
func (p *Pipeline) Reject(ctx context.Context, raw adapter.RawRequest, err *envelope.Error) Response {
	start := time.Now()
	env := envelope.Failed(envelope.Fields{
		Model:  raw.Params[adapter.ParamModel],
		Action: raw.Params[adapter.ParamAction],
		Verb:   raw.Method,
		Path:   raw.Path,
	}, err)
	p.notifyRequest(ctx, env)

	status, body := responder.Render(nil, err)

	p.notifyResponse(ctx, env, status, time.Since(start))
	return Response{Status: status, Body: body}
}

func (p *Pipeline) notifyRequest(ctx context.Context, env envelope.Envelope) {
	for _, h := range p.hooks {
		h.OnRequest(ctx, env)
	}
}

func (p *Pipeline) notifyResponse(ctx context.Context, env envelope.Envelope, status int, latency time.Duration) {
	for _, h := range p.hooks {
		h.OnResponse(ctx, env, status, latency)
	}
}
