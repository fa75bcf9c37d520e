package envelope

import (
	"errors"
	"fmt"
)

// Kind classifica a origem de um erro do pipeline.
type Kind string

const (
	KindMissingRouteParameter  Kind = "missing_route_parameter"
	KindMalformedPayload       Kind = "malformed_payload"
	KindUnsupportedContentType Kind = "unsupported_content_type"
	KindUnsupportedMethod      Kind = "unsupported_method"
	KindValidationFailure      Kind = "validation_failure"
	KindUnknownModel           Kind = "unknown_model"
	KindUnknownAction          Kind = "unknown_action"
	KindMethodNotAllowed       Kind = "method_not_allowed"
	KindPayloadTooLarge        Kind = "payload_too_large"
	KindInternal               Kind = "internal"
)

// Error é o par (mensagem, status) que atravessa o pipeline.
//
// Não é uma exceção: cada estágio devolve um *Error e o primeiro que aparecer
// é renderizado sem alterações.
type Error struct {
	Kind    Kind
	Message string
	Status  uint16
}

func (e *Error) Error() string {
	return e.Message
}

// NewError cria um erro com status arbitrário.
func NewError(kind Kind, status uint16, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Status: status}
}

func MissingRouteParameter(param string) *Error {
	return NewError(KindMissingRouteParameter, 400, fmt.Sprintf("No %s given", param))
}

func MalformedPayload(details error) *Error {
	return NewError(KindMalformedPayload, 400, fmt.Sprintf("Error parsing: %v", details))
}

func UnsupportedContentType(contentType string) *Error {
	return NewError(KindUnsupportedContentType, 501, fmt.Sprintf("Content Type %q not implemented", contentType))
}

func UnsupportedMethod() *Error {
	return NewError(KindUnsupportedMethod, 501, "Not implemented")
}

func ValidationFailure(msg string) *Error {
	return NewError(KindValidationFailure, 400, msg)
}

func UnknownModel(model string) *Error {
	return NewError(KindUnknownModel, 400, fmt.Sprintf("Unknown model %q", model))
}

func UnknownAction(action string) *Error {
	return NewError(KindUnknownAction, 404, fmt.Sprintf("Unknown action %q", action))
}

func MethodNotAllowed(method, model, action string) *Error {
	return NewError(KindMethodNotAllowed, 405,
		fmt.Sprintf("Method %q not allowed on endpoint \"%s/%s\"", method, model, action))
}

func PayloadTooLarge() *Error {
	return NewError(KindPayloadTooLarge, 413, "Request body too large")
}

func Internal(msg string) *Error {
	return NewError(KindInternal, 500, msg)
}

// FromError converte um erro qualquer em *Error, preservando o original
// quando ele já é do pipeline.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err.Error())
}
