// Package config carrega a configuração do serviço a partir de defaults,
// de um arquivo YAML opcional e de variáveis de ambiente, nessa ordem de
// precedência crescente.
package config

import (
	"fmt"
	"time"
)

const (
	RuntimeLocal  = "local"
	RuntimeLambda = "lambda"
)

// Config representa a configuração raiz do serviço.
type Config struct {
	Runtime      string      `yaml:"runtime" env:"RUNTIME" envDefault:"local" validate:"required,oneof=local lambda"`
	Host         string      `yaml:"host" env:"host" envDefault:"127.0.0.1" validate:"required_if=Runtime local"`
	Port         int         `yaml:"port" env:"port" envDefault:"8080" validate:"min=1,max=65535"`
	PublicDir    string      `yaml:"public_dir" env:"public_dir" envDefault:"../app/public"`
	APIPrefix    string      `yaml:"api_prefix" env:"API_PREFIX" envDefault:"/api" validate:"required,startswith=/"`
	MaxBodyBytes int64       `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" envDefault:"1048576" validate:"gt=0"`
	Timeout      string      `yaml:"timeout" env:"REQUEST_TIMEOUT" envDefault:"30s" validate:"required"` // Ex: "500ms", "2s"
	Logging      LoggingConf `yaml:"logging"`
	Metrics      MetricsConf `yaml:"metrics"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog    DatadogConf    `yaml:"datadog"`
	Prometheus PrometheusConf `yaml:"prometheus"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" envDefault:"localhost:8125" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"fast_json_api."`
}

// PrometheusConf expõe as métricas para scraping em Path. Só tem efeito no
// runtime local.
type PrometheusConf struct {
	Enabled   bool   `yaml:"enabled" env:"PROM_ENABLED"`
	Path      string `yaml:"path" env:"PROM_PATH" envDefault:"/metrics" validate:"omitempty,startswith=/"`
	Namespace string `yaml:"namespace" env:"PROM_NAMESPACE" envDefault:"fast_json_api"`
}

// Addr devolve o endereço de bind do servidor HTTP.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetTimeout converte Timeout, com fallback de 30s.
func (c Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
