package models

import (
	"testing"

	"github.com/raywall/fast-json-api/pkg/dispatcher"
	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersEnv(verb, action string, data interface{}) envelope.Envelope {
	return envelope.New(envelope.Fields{Model: UsersModel, Action: action, Verb: verb, Path: "/api/users/" + action, Data: data})
}

func TestRegistry_Resolve(t *testing.T) {
	r := Default()

	t.Run("Known model", func(t *testing.T) {
		m, err := r.Resolve("users")
		require.Nil(t, err)
		assert.Equal(t, "users", m.Name())
	})

	t.Run("Unknown model", func(t *testing.T) {
		m, err := r.Resolve("ghost")
		assert.Nil(t, m)
		require.NotNil(t, err)
		assert.Equal(t, uint16(400), err.Status)
		assert.Equal(t, `Unknown model "ghost"`, err.Message)
	})

	assert.Equal(t, []string{"users"}, r.Names())
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	noop := func(raw interface{}) (string, *envelope.Error) { return "", nil }

	require.NoError(t, Register(r, "notes", noop, dispatcher.Table[string]{}))
	assert.Error(t, Register(r, "notes", noop, dispatcher.Table[string]{}), "duplicado")
	assert.Error(t, Register(r, "", noop, dispatcher.Table[string]{}))
	assert.Error(t, Register[string](r, "other", nil, dispatcher.Table[string]{}))
}

func TestUsers_Serve(t *testing.T) {
	m, _ := Default().Resolve(UsersModel)
	creds := map[string]interface{}{"username": "test", "password": "test"}

	t.Run("GET and POST login behave the same", func(t *testing.T) {
		getOut, err := m.Serve(usersEnv("GET", "login", creds))
		require.Nil(t, err)
		postOut, err := m.Serve(usersEnv("POST", "login", creds))
		require.Nil(t, err)

		assert.Equal(t, getOut, postOut)
		assert.Contains(t, getOut, "users")
		assert.Contains(t, getOut, "login")
		assert.Contains(t, getOut, "test")
	})

	t.Run("DELETE login is not allowed even without payload", func(t *testing.T) {
		_, err := m.Serve(usersEnv("DELETE", "login", nil))
		require.NotNil(t, err)
		assert.Equal(t, uint16(405), err.Status)
		assert.Contains(t, err.Message, "DELETE")
		assert.Contains(t, err.Message, "users/login")
	})

	t.Run("Unknown action", func(t *testing.T) {
		_, err := m.Serve(usersEnv("GET", "logout", creds))
		require.NotNil(t, err)
		assert.Equal(t, uint16(404), err.Status)
	})

	t.Run("Validation runs after routing", func(t *testing.T) {
		_, err := m.Serve(usersEnv("POST", "login", map[string]interface{}{"username": "", "password": "x"}))
		require.NotNil(t, err)
		assert.Equal(t, "Username can't be empty", err.Message)
	})
}
