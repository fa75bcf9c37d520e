package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *Config) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *Config) error {
	// O prefixo da API não pode ocupar a raiz, que pertence aos arquivos estáticos
	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	if prefix == "" {
		return fmt.Errorf("api_prefix inválido: '%s'. A raiz é reservada aos arquivos estáticos", cfg.APIPrefix)
	}
	if strings.ContainsAny(prefix, "{}") {
		return fmt.Errorf("api_prefix não pode conter variáveis de rota: '%s'", cfg.APIPrefix)
	}

	prom := cfg.Metrics.Prometheus
	if prom.Enabled {
		if prom.Path == "" || prom.Path == "/" {
			return fmt.Errorf("metrics.prometheus.path inválido: '%s'", prom.Path)
		}
		if prom.Path == prefix || strings.HasPrefix(prom.Path, prefix+"/") {
			return fmt.Errorf("metrics.prometheus.path '%s' conflita com api_prefix '%s'", prom.Path, cfg.APIPrefix)
		}
	}
	return nil
}
