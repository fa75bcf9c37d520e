package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath é a variável que aponta para o arquivo YAML opcional.
const EnvConfigPath = "CONFIG_FILE_PATH"

// Load carrega a configuração usando o arquivo apontado por CONFIG_FILE_PATH,
// quando definido.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(EnvConfigPath))
}

// LoadFrom monta a configuração em três camadas: defaults das tags
// "envDefault", o arquivo YAML em path (opcional) e as variáveis de
// ambiente. O resultado é validado antes de ser devolvido.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	if err := applyDefaults(cfg); err != nil {
		return nil, fmt.Errorf("falha ao aplicar defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(strings.TrimPrefix(path, "file://"))
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("falha na leitura do ambiente: %w", err)
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return cfg, nil
}
