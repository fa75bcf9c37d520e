package adapter

import (
	"testing"

	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func route(model, action string) map[string]string {
	return map[string]string{ParamModel: model, ParamAction: action}
}

func TestBasic_RouteParameters(t *testing.T) {
	t.Run("Missing model", func(t *testing.T) {
		env := Basic(RawRequest{Method: "GET", Path: "/api", Params: route("", "login")})
		require.NotNil(t, env.Err())
		assert.Equal(t, "No model given", env.Err().Message)
		assert.Equal(t, uint16(400), env.Err().Status)
	})

	t.Run("Missing action", func(t *testing.T) {
		env := Basic(RawRequest{Method: "GET", Path: "/api/users", Params: route("users", "")})
		require.NotNil(t, env.Err())
		assert.Equal(t, "No action given", env.Err().Message)
		assert.Equal(t, uint16(400), env.Err().Status)
	})

	t.Run("Both missing reports model first", func(t *testing.T) {
		env := Basic(RawRequest{Method: "GET", Path: "/api/", Params: nil})
		require.NotNil(t, env.Err())
		assert.Equal(t, "No model given", env.Err().Message)
		assert.Equal(t, envelope.KindMissingRouteParameter, env.Err().Kind)
	})

	t.Run("Route error skips payload decoding", func(t *testing.T) {
		env := Basic(RawRequest{Method: "POST", Params: route("users", ""), ContentType: "text/plain"})
		require.NotNil(t, env.Err())
		assert.Equal(t, uint16(400), env.Err().Status)
		assert.Nil(t, env.Data())
	})
}

func TestBasic_GET(t *testing.T) {
	t.Run("Query string becomes data", func(t *testing.T) {
		env := Basic(RawRequest{
			Method:   "GET",
			Path:     "/api/users/login",
			Params:   route("users", "login"),
			RawQuery: "username=test&password=test",
		})
		require.Nil(t, env.Err())
		assert.Equal(t, envelope.MethodGet, env.Method())
		assert.Equal(t, map[string]interface{}{"username": "test", "password": "test"}, env.Data())
	})

	t.Run("Malformed query", func(t *testing.T) {
		env := Basic(RawRequest{Method: "GET", Params: route("users", "login"), RawQuery: "a=%zz"})
		require.NotNil(t, env.Err())
		assert.Equal(t, uint16(400), env.Err().Status)
		assert.Contains(t, env.Err().Message, "Error parsing: ")
		assert.Nil(t, env.Data())
	})
}

func TestBasic_POST(t *testing.T) {
	t.Run("JSON body", func(t *testing.T) {
		env := Basic(RawRequest{
			Method:      "POST",
			Params:      route("users", "login"),
			ContentType: "application/json",
			Body:        []byte(`{"username":"a","password":"b"}`),
		})
		require.Nil(t, env.Err())
		assert.Equal(t, map[string]interface{}{"username": "a", "password": "b"}, env.Data())
	})

	t.Run("JSON with charset parameter", func(t *testing.T) {
		env := Basic(RawRequest{
			Method:      "POST",
			Params:      route("users", "login"),
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`[1,2]`),
		})
		require.Nil(t, env.Err())
		assert.Equal(t, []interface{}{1.0, 2.0}, env.Data())
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		env := Basic(RawRequest{
			Method:      "POST",
			Params:      route("users", "login"),
			ContentType: "application/json",
			Body:        []byte(`{"username":`),
		})
		require.NotNil(t, env.Err())
		assert.Equal(t, uint16(400), env.Err().Status)
		assert.Equal(t, envelope.KindMalformedPayload, env.Err().Kind)
	})

	t.Run("Empty body", func(t *testing.T) {
		env := Basic(RawRequest{Method: "POST", Params: route("users", "login"), ContentType: "application/json"})
		require.NotNil(t, env.Err())
		assert.Equal(t, uint16(400), env.Err().Status)
	})

	t.Run("Other content type", func(t *testing.T) {
		env := Basic(RawRequest{
			Method:      "POST",
			Params:      route("users", "login"),
			ContentType: "text/plain",
			Body:        []byte("hello"),
		})
		require.NotNil(t, env.Err())
		assert.Equal(t, uint16(501), env.Err().Status)
		assert.Equal(t, `Content Type "text/plain" not implemented`, env.Err().Message)
	})
}

func TestBasic_PUT(t *testing.T) {
	env := Basic(RawRequest{
		Method:      "PUT",
		Path:        "/api/files/upload/report.csv",
		Params:      route("files", "upload"),
		ContentType: "text/csv",
		Body:        []byte("a,b\n1,2"),
	})
	require.Nil(t, env.Err())
	assert.Equal(t, map[string]interface{}{
		"filename": "/api/files/upload/report.csv",
		"content":  "a,b\n1,2",
		"mime":     "text/csv",
	}, env.Data())
}

func TestBasic_DELETEAndOthers(t *testing.T) {
	t.Run("DELETE has null data", func(t *testing.T) {
		env := Basic(RawRequest{Method: "DELETE", Params: route("users", "login"), Body: []byte("ignored")})
		require.Nil(t, env.Err())
		assert.Nil(t, env.Data())
		assert.Equal(t, envelope.MethodDelete, env.Method())
	})

	t.Run("PATCH is not implemented", func(t *testing.T) {
		env := Basic(RawRequest{Method: "PATCH", Params: route("users", "login")})
		require.NotNil(t, env.Err())
		assert.Equal(t, "Not implemented", env.Err().Message)
		assert.Equal(t, uint16(501), env.Err().Status)
		assert.Equal(t, envelope.MethodOther, env.Method())
		assert.Equal(t, "PATCH", env.Verb())
	})
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "", MediaType(""))
	assert.Equal(t, "application/json", MediaType("Application/JSON; charset=utf-8"))
	assert.Equal(t, "text/plain", MediaType("text/plain"))
}
