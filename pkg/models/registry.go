// Package models mantém o registro de modelos expostos pela API. Cada modelo
// é um par (validador, tabela de actions): adicionar um modelo é registrar
// uma única entrada.
package models

import (
	"fmt"
	"sort"

	"github.com/raywall/fast-json-api/pkg/dispatcher"
	"github.com/raywall/fast-json-api/pkg/envelope"
)

// Validator converte o payload não tipado em T ou devolve um erro de
// validação. Deve ser pura e parar no primeiro problema encontrado.
type Validator[T any] func(raw interface{}) (T, *envelope.Error)

// Model é a capacidade registrada para um nome de modelo.
type Model interface {
	Name() string
	// Serve roteia a action, valida o payload e executa o handler.
	Serve(env envelope.Envelope) (interface{}, *envelope.Error)
}

// Registry é montado na inicialização e apenas lido depois disso, o que o
// torna seguro para uso concorrente sem locks.
type Registry struct {
	models map[string]Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Register adiciona um modelo tipado ao registro.
func Register[T any](r *Registry, name string, validate Validator[T], actions dispatcher.Table[T]) error {
	if name == "" {
		return fmt.Errorf("model name must not be empty")
	}
	if validate == nil {
		return fmt.Errorf("model %q: validator is required", name)
	}
	if _, exists := r.models[name]; exists {
		return fmt.Errorf("model %q already registered", name)
	}
	r.models[name] = &typedModel[T]{name: name, validate: validate, actions: actions}
	return nil
}

// Resolve busca o modelo pelo nome. Modelo desconhecido resulta em 400.
func (r *Registry) Resolve(name string) (Model, *envelope.Error) {
	m, ok := r.models[name]
	if !ok {
		return nil, envelope.UnknownModel(name)
	}
	return m, nil
}

// Names lista os modelos registrados em ordem alfabética.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type typedModel[T any] struct {
	name     string
	validate Validator[T]
	actions  dispatcher.Table[T]
}

func (m *typedModel[T]) Name() string { return m.name }

// Serve resolve a rota antes de validar para que 404/405 não sejam
// mascarados por erros de payload.
func (m *typedModel[T]) Serve(env envelope.Envelope) (interface{}, *envelope.Error) {
	handler, err := m.actions.Route(env)
	if err != nil {
		return nil, err
	}

	data, err := m.validate(env.Data())
	if err != nil {
		return nil, err
	}

	return dispatcher.Dispatch(handler, env, data)
}

// Default devolve o registro com os modelos nativos do serviço.
func Default() *Registry {
	r := NewRegistry()
	if err := Register(r, UsersModel, ValidateCredentials, UsersActions()); err != nil {
		panic(err)
	}
	return r
}
