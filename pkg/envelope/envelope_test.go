package envelope

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := map[string]Method{
		"GET":     MethodGet,
		"get":     MethodGet,
		"Post":    MethodPost,
		"PUT":     MethodPut,
		"delete":  MethodDelete,
		"PATCH":   MethodOther,
		"OPTIONS": MethodOther,
		"":        MethodOther,
	}
	for verb, want := range tests {
		assert.Equal(t, want, ParseMethod(verb), verb)
	}
}

func TestNew(t *testing.T) {
	env := New(Fields{
		Model:  "users",
		Action: "login",
		Verb:   "patch",
		Path:   "/api/users/login",
		Data:   map[string]interface{}{"a": "1"},
	})

	assert.Equal(t, "users", env.Model())
	assert.Equal(t, "login", env.Action())
	assert.Equal(t, MethodOther, env.Method())
	assert.Equal(t, "PATCH", env.Verb())
	assert.Equal(t, "/api/users/login", env.Path())
	assert.Nil(t, env.Err())
	assert.Equal(t, map[string]interface{}{"a": "1"}, env.Data())
}

func TestFailed_DropsData(t *testing.T) {
	env := Failed(Fields{Model: "users", Verb: "GET", Data: "payload"}, MissingRouteParameter("action"))

	require.NotNil(t, env.Err())
	assert.Equal(t, "No action given", env.Err().Message)
	assert.Nil(t, env.Data())
	assert.Equal(t, "users", env.Model())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		kind   Kind
		status uint16
		msg    string
	}{
		{MissingRouteParameter("model"), KindMissingRouteParameter, 400, "No model given"},
		{MalformedPayload(errors.New("unexpected EOF")), KindMalformedPayload, 400, "Error parsing: unexpected EOF"},
		{UnsupportedContentType("text/plain"), KindUnsupportedContentType, 501, `Content Type "text/plain" not implemented`},
		{UnsupportedMethod(), KindUnsupportedMethod, 501, "Not implemented"},
		{ValidationFailure("Username is not given"), KindValidationFailure, 400, "Username is not given"},
		{UnknownModel("orders"), KindUnknownModel, 400, `Unknown model "orders"`},
		{UnknownAction("logout"), KindUnknownAction, 404, `Unknown action "logout"`},
		{MethodNotAllowed("DELETE", "users", "login"), KindMethodNotAllowed, 405, `Method "DELETE" not allowed on endpoint "users/login"`},
		{PayloadTooLarge(), KindPayloadTooLarge, 413, "Request body too large"},
		{Internal("boom"), KindInternal, 500, "boom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.msg, tt.err.Message)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	original := UnknownModel("orders")
	wrapped := fmt.Errorf("resolve: %w", original)
	assert.Same(t, original, FromError(wrapped))

	converted := FromError(errors.New("disk full"))
	assert.Equal(t, KindInternal, converted.Kind)
	assert.Equal(t, uint16(500), converted.Status)
	assert.Equal(t, "disk full", converted.Message)
}

func TestNewError_CarriesArbitraryStatus(t *testing.T) {
	err := NewError(KindMalformedPayload, 400, "Error reading body: connection reset")

	assert.Equal(t, KindMalformedPayload, err.Kind)
	assert.Equal(t, uint16(400), err.Status)
	assert.Equal(t, "Error reading body: connection reset", err.Error())

	env := Failed(Fields{Model: "users", Action: "login", Verb: "POST"}, err)
	assert.Same(t, err, env.Err())
}
