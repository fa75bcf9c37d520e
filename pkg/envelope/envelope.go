// Package envelope define a representação normalizada de uma requisição da
// API e a taxonomia de erros compartilhada por todos os estágios do pipeline.
package envelope

import "strings"

// Method é o verbo HTTP reduzido aos casos que o pipeline conhece.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodOther  Method = "OTHER"
)

// ParseMethod mapeia o texto do verbo para Method. Verbos fora do conjunto
// suportado viram MethodOther.
func ParseMethod(verb string) Method {
	switch m := Method(strings.ToUpper(verb)); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m
	default:
		return MethodOther
	}
}

// Envelope é o resultado imutável da normalização de uma requisição.
//
// Os campos são privados: depois que o Adapter cria o envelope nenhum estágio
// consegue alterá-lo. Quando Err() não é nil, Data() devolve nil.
type Envelope struct {
	model  string
	action string
	method Method
	verb   string
	path   string
	data   interface{}
	err    *Error
}

// Fields agrupa os valores usados para construir um Envelope.
type Fields struct {
	Model  string
	Action string
	Verb   string
	Path   string
	Data   interface{}
}

// New cria um envelope válido.
func New(f Fields) Envelope {
	return Envelope{
		model:  f.Model,
		action: f.Action,
		method: ParseMethod(f.Verb),
		verb:   strings.ToUpper(f.Verb),
		path:   f.Path,
		data:   f.Data,
	}
}

// Failed cria um envelope que carrega um erro. Os dados são descartados.
func Failed(f Fields, err *Error) Envelope {
	env := New(f)
	env.data = nil
	env.err = err
	return env
}

func (e Envelope) Model() string  { return e.model }
func (e Envelope) Action() string { return e.action }
func (e Envelope) Method() Method { return e.method }

// Verb devolve o verbo original em maiúsculas (ex: "PATCH").
func (e Envelope) Verb() string { return e.verb }
func (e Envelope) Path() string { return e.path }
func (e Envelope) Err() *Error  { return e.err }

// Data devolve o payload não tipado, ou nil quando o envelope carrega erro.
func (e Envelope) Data() interface{} {
	if e.err != nil {
		return nil
	}
	return e.data
}
