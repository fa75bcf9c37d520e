package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/fast-json-api/pkg/dispatcher"
	"github.com/raywall/fast-json-api/pkg/envelope"
)

const UsersModel = "users"

// Credentials é o payload tipado do modelo users.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// String nunca expõe a senha.
func (c Credentials) String() string {
	return fmt.Sprintf("{username:%s password:****}", c.Username)
}

var validate = validator.New()

// ValidateCredentials exige username e password, nessa ordem. Para cada campo
// verifica presença, tipo string e valor não vazio; o primeiro problema
// encontrado é devolvido. Payload que não é objeto equivale a campos ausentes.
func ValidateCredentials(raw interface{}) (Credentials, *envelope.Error) {
	obj, _ := raw.(map[string]interface{})

	var creds Credentials
	var err *envelope.Error

	if creds.Username, err = stringField(obj, "username", "Username"); err != nil {
		return Credentials{}, err
	}
	if err = checkField(&creds, "Username"); err != nil {
		return Credentials{}, err
	}

	if creds.Password, err = stringField(obj, "password", "Password"); err != nil {
		return Credentials{}, err
	}
	if err = checkField(&creds, "Password"); err != nil {
		return Credentials{}, err
	}

	return creds, nil
}

func stringField(obj map[string]interface{}, key, label string) (string, *envelope.Error) {
	value, ok := obj[key]
	if !ok {
		return "", envelope.ValidationFailure(label + " is not given")
	}
	s, ok := value.(string)
	if !ok {
		return "", envelope.ValidationFailure(label + " is not a string")
	}
	return s, nil
}

// checkField aplica as tags validate de um único campo da struct.
func checkField(s interface{}, field string) *envelope.Error {
	err := validate.StructPartial(s, field)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return envelope.Internal(fmt.Sprintf("validation error: %v", err))
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return envelope.ValidationFailure(fe.Field() + " can't be empty")
	default:
		return envelope.ValidationFailure(fmt.Sprintf("%s failed rule '%s'", fe.Field(), fe.Tag()))
	}
}

// UsersActions registra login em GET e POST com o mesmo comportamento.
func UsersActions() dispatcher.Table[Credentials] {
	return dispatcher.Table[Credentials]{}.
		Handle("login", login, envelope.MethodGet, envelope.MethodPost)
}

func login(req dispatcher.Request[Credentials]) (interface{}, *envelope.Error) {
	return fmt.Sprintf("called model %s with action %s. Data: %v", req.Model, req.Action, req.Data), nil
}
