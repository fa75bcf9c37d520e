// Package responder converte o resultado do pipeline no envelope JSON de
// resposta e no status HTTP correspondente.
package responder

import (
	"encoding/json"
	"net/http"

	"github.com/raywall/fast-json-api/pkg/envelope"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// statusTable lista os códigos reconhecidos e sua razão canônica. Código
// fora da tabela é renderizado como 500.
var statusTable = map[uint16]string{
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	422: "Unprocessable Entity",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
}

// Body é o envelope JSON da resposta.
type Body struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *string     `json:"error,omitempty"`
}

// StatusFor devolve o status HTTP externo para um código de erro.
func StatusFor(code uint16) int {
	if _, ok := statusTable[code]; ok {
		return int(code)
	}
	return http.StatusInternalServerError
}

// Reason devolve a razão canônica do código, ou a de 500 quando não
// reconhecido.
func Reason(code uint16) string {
	if reason, ok := statusTable[code]; ok {
		return reason
	}
	return statusTable[http.StatusInternalServerError]
}

// Render produz (status, corpo) para um resultado. err tem precedência sobre
// data.
func Render(data interface{}, err *envelope.Error) (int, []byte) {
	if err != nil {
		return renderError(StatusFor(err.Status), err.Message)
	}

	body, marshalErr := json.Marshal(okBody(data))
	if marshalErr != nil {
		return renderError(http.StatusInternalServerError, "Error encoding response: "+marshalErr.Error())
	}
	return http.StatusOK, body
}

func okBody(data interface{}) map[string]interface{} {
	// data:null precisa aparecer no corpo, por isso não usamos Body aqui
	return map[string]interface{}{"status": StatusOK, "data": data}
}

func renderError(status int, msg string) (int, []byte) {
	body, _ := json.Marshal(Body{Status: StatusError, Error: &msg})
	return status, body
}
