// Package adapter normaliza requisições de transporte (HTTP ou eventos do API
// Gateway) em um envelope.Envelope.
//
// Basic é uma função pura de (método, caminho, parâmetros, query, content
// type, corpo): não lê rede, não loga e não guarda estado. O log da linha de
// requisição é responsabilidade dos hooks do pipeline.
package adapter

import (
	"encoding/json"
	"mime"
	"strings"

	"github.com/raywall/fast-json-api/pkg/envelope"
)

const (
	ParamModel  = "model"
	ParamAction = "action"

	ContentTypeJSON = "application/json"
)

// RawRequest é a visão mínima de uma requisição de transporte.
type RawRequest struct {
	Method      string
	Path        string
	Params      map[string]string
	RawQuery    string
	ContentType string
	Body        []byte
}

// Basic extrai model e action dos parâmetros de rota e decodifica o payload
// de acordo com o método. No máximo um erro é retido: a primeira verificação
// que falhar encerra a normalização.
func Basic(req RawRequest) envelope.Envelope {
	fields := envelope.Fields{
		Model:  req.Params[ParamModel],
		Action: req.Params[ParamAction],
		Verb:   req.Method,
		Path:   req.Path,
	}

	if err := checkRoute(fields); err != nil {
		return envelope.Failed(fields, err)
	}

	data, err := decode(req)
	if err != nil {
		return envelope.Failed(fields, err)
	}

	fields.Data = data
	return envelope.New(fields)
}

func checkRoute(f envelope.Fields) *envelope.Error {
	if f.Model == "" {
		return envelope.MissingRouteParameter(ParamModel)
	}
	if f.Action == "" {
		return envelope.MissingRouteParameter(ParamAction)
	}
	return nil
}

func decode(req RawRequest) (interface{}, *envelope.Error) {
	switch envelope.ParseMethod(req.Method) {
	case envelope.MethodGet:
		data, err := ParseQuery(req.RawQuery)
		if err != nil {
			return nil, envelope.MalformedPayload(err)
		}
		return data, nil

	case envelope.MethodPost:
		contentType := MediaType(req.ContentType)
		if contentType != ContentTypeJSON {
			return nil, envelope.UnsupportedContentType(contentType)
		}
		var data interface{}
		if err := json.Unmarshal(req.Body, &data); err != nil {
			return nil, envelope.MalformedPayload(err)
		}
		return data, nil

	case envelope.MethodPut:
		// PUT é tratado como upload de arquivo, independente do content type
		return map[string]interface{}{
			"filename": req.Path,
			"content":  string(req.Body),
			"mime":     MediaType(req.ContentType),
		}, nil

	case envelope.MethodDelete:
		return nil, nil

	default:
		return nil, envelope.UnsupportedMethod()
	}
}

// MediaType devolve o content type sem parâmetros e em minúsculas
// ("application/json; charset=utf-8" -> "application/json").
func MediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(mt))
	}
	return mt
}
