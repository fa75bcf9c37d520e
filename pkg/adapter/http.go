package adapter

import (
	"net/http"

	"github.com/gorilla/mux"
)

// FromHTTP monta um RawRequest a partir de uma requisição roteada pelo mux.
// O corpo já deve ter sido lido pelo transporte.
func FromHTTP(r *http.Request, body []byte) RawRequest {
	vars := mux.Vars(r)

	return RawRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Params: map[string]string{
			ParamModel:  vars[ParamModel],
			ParamAction: vars[ParamAction],
		},
		RawQuery:    r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	}
}
