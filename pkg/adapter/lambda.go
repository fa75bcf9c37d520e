package adapter

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway monta um RawRequest a partir de um evento proxy do API
// Gateway. A rota esperada é /api/{model}/{action+}; apenas o primeiro
// segmento de action é considerado. Em caso de erro o RawRequest devolvido
// ainda carrega método, caminho e parâmetros.
func FromAPIGateway(req events.APIGatewayProxyRequest) (RawRequest, error) {
	action, _, _ := strings.Cut(req.PathParameters[ParamAction], "/")

	raw := RawRequest{
		Method: req.HTTPMethod,
		Path:   req.Path,
		Params: map[string]string{
			ParamModel:  req.PathParameters[ParamModel],
			ParamAction: action,
		},
		RawQuery:    rawQuery(req),
		ContentType: header(req, "Content-Type"),
		Body:        []byte(req.Body),
	}

	if req.IsBase64Encoded && req.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			// devolve o restante da requisição para que o erro seja logado com a rota
			raw.Body = nil
			return raw, fmt.Errorf("invalid base64 body: %w", err)
		}
		raw.Body = decoded
	}

	return raw, nil
}

func rawQuery(req events.APIGatewayProxyRequest) string {
	values := url.Values{}
	if len(req.MultiValueQueryStringParameters) > 0 {
		for k, vs := range req.MultiValueQueryStringParameters {
			for _, v := range vs {
				values.Add(k, v)
			}
		}
	} else {
		for k, v := range req.QueryStringParameters {
			values.Add(k, v)
		}
	}
	return values.Encode()
}

// header busca um cabeçalho sem diferenciar maiúsculas, já que o API Gateway
// repassa os nomes como o cliente enviou.
func header(req events.APIGatewayProxyRequest, name string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	for k, vs := range req.MultiValueHeaders {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
