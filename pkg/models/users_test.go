package models

import (
	"testing"

	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials_Valid(t *testing.T) {
	inputs := []map[string]interface{}{
		{"username": "test", "password": "test"},
		{"username": "a", "password": "b", "extra": 1.0},
		{"username": "  ", "password": "ç"},
	}

	for _, in := range inputs {
		creds, err := ValidateCredentials(in)
		require.Nil(t, err)
		assert.Equal(t, Credentials{Username: in["username"].(string), Password: in["password"].(string)}, creds)
	}
}

func TestValidateCredentials_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"Username absent", map[string]interface{}{"password": "x"}, "Username is not given"},
		{"Username not a string", map[string]interface{}{"username": 10.0, "password": "x"}, "Username is not a string"},
		{"Username null", map[string]interface{}{"username": nil, "password": "x"}, "Username is not a string"},
		{"Username empty", map[string]interface{}{"username": "", "password": "x"}, "Username can't be empty"},
		{"Password absent", map[string]interface{}{"username": "x"}, "Password is not given"},
		{"Password not a string", map[string]interface{}{"username": "x", "password": []interface{}{"a"}}, "Password is not a string"},
		{"Password empty", map[string]interface{}{"username": "x", "password": ""}, "Password can't be empty"},
		{"Username checked before password", map[string]interface{}{"username": ""}, "Username can't be empty"},
		{"Null payload", nil, "Username is not given"},
		{"Array payload", []interface{}{"username"}, "Username is not given"},
		{"Nested username", map[string]interface{}{"username": map[string]interface{}{"a": "b"}}, "Username is not a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := ValidateCredentials(tt.input)
			require.NotNil(t, err)
			assert.Equal(t, tt.expected, err.Message)
			assert.Equal(t, uint16(400), err.Status)
			assert.Equal(t, envelope.KindValidationFailure, err.Kind)
			assert.Equal(t, Credentials{}, creds, "nenhum valor parcial deve ser exposto")
		})
	}
}

func TestCredentials_StringMasksPassword(t *testing.T) {
	s := Credentials{Username: "ana", Password: "secret"}.String()
	assert.Contains(t, s, "ana")
	assert.NotContains(t, s, "secret")
}
