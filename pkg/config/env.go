package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// tagSource indica de onde o valor de um campo é lido.
type tagSource int

const (
	fromDefault tagSource = iota
	fromEnv
)

// applyDefaults preenche cada campo com a tag "envDefault".
func applyDefaults(cfg interface{}) error {
	return loadTags(cfg, fromDefault)
}

// applyEnv sobrescreve apenas os campos cuja variável de ambiente (tag
// "env") está definida e não vazia.
func applyEnv(cfg interface{}) error {
	return loadTags(cfg, fromEnv)
}

func loadTags(cfg interface{}, source tagSource) error {
	val := reflect.ValueOf(cfg)
	if !val.IsValid() {
		return &InvalidConfigError{}
	}
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidConfigError{Value: val.Type()}
	}
	return loadStruct(val.Elem(), source)
}

// loadStruct processa recursivamente uma struct
func loadStruct(val reflect.Value, source tagSource) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStruct(field, source); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		var raw string
		switch source {
		case fromDefault:
			raw = fieldType.Tag.Get("envDefault")
		case fromEnv:
			raw = os.Getenv(envTag)
		}
		if raw == "" {
			continue
		}

		if err := setFieldValue(field, raw); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     raw,
				Err:       err,
			}
		}
	}

	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// setFieldValue define o valor de um campo baseado no seu tipo
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(uintValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}
