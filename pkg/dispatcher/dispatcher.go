// Package dispatcher seleciona o comportamento de uma requisição já tipada
// pelo par (action, método).
package dispatcher

import (
	"github.com/raywall/fast-json-api/pkg/envelope"
)

// Request é a requisição tipada que chega aos handlers. Data nunca é o JSON
// cru: é sempre o valor produzido pelo validador do modelo.
type Request[T any] struct {
	Model  string
	Action string
	Method envelope.Method
	Path   string
	Data   T
}

// Handler executa uma action. Deve ser uma função pura da requisição.
type Handler[T any] func(req Request[T]) (interface{}, *envelope.Error)

// Table mapeia action -> método -> handler.
type Table[T any] map[string]map[envelope.Method]Handler[T]

// Handle registra um handler para a action nos métodos informados e devolve a
// própria tabela para encadear registros.
func (t Table[T]) Handle(action string, h Handler[T], methods ...envelope.Method) Table[T] {
	byMethod, ok := t[action]
	if !ok {
		byMethod = make(map[envelope.Method]Handler[T])
		t[action] = byMethod
	}
	for _, m := range methods {
		byMethod[m] = h
	}
	return t
}

// Route resolve o handler para a requisição descrita pelo envelope.
//
// Action desconhecida resulta em 404; action conhecida com método não
// registrado resulta em 405.
func (t Table[T]) Route(env envelope.Envelope) (Handler[T], *envelope.Error) {
	byMethod, ok := t[env.Action()]
	if !ok {
		return nil, envelope.UnknownAction(env.Action())
	}
	h, ok := byMethod[env.Method()]
	if !ok {
		return nil, envelope.MethodNotAllowed(env.Verb(), env.Model(), env.Action())
	}
	return h, nil
}

// Dispatch executa o handler com o valor tipado.
func Dispatch[T any](h Handler[T], env envelope.Envelope, data T) (interface{}, *envelope.Error) {
	return h(Request[T]{
		Model:  env.Model(),
		Action: env.Action(),
		Method: env.Method(),
		Path:   env.Path(),
		Data:   data,
	})
}
