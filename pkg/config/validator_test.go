package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	valid := func() *Config {
		return &Config{
			Runtime:      RuntimeLocal,
			Host:         "127.0.0.1",
			Port:         8080,
			APIPrefix:    "/api",
			MaxBodyBytes: 1024,
			Timeout:      "5s",
			Logging:      LoggingConf{Enabled: true, Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid Config", func(c *Config) {}, false},
		{"Valid Lambda without host", func(c *Config) { c.Runtime = RuntimeLambda; c.Host = "" }, false},
		{"Unknown runtime", func(c *Config) { c.Runtime = "k8s" }, true},
		{"Local without host", func(c *Config) { c.Host = "" }, true},
		{"Port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"Prefix without slash", func(c *Config) { c.APIPrefix = "api" }, true},
		{"Prefix at root", func(c *Config) { c.APIPrefix = "/" }, true},
		{"Prefix with route variable", func(c *Config) { c.APIPrefix = "/{v}" }, true},
		{"Zero body limit", func(c *Config) { c.MaxBodyBytes = 0 }, true},
		{"Invalid log level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"Datadog enabled without addr", func(c *Config) {
			c.Metrics.Datadog = DatadogConf{Enabled: true}
		}, true},
		{"Datadog enabled with addr", func(c *Config) {
			c.Metrics.Datadog = DatadogConf{Enabled: true, Addr: "localhost:8125"}
		}, false},
		{"Prometheus enabled", func(c *Config) {
			c.Metrics.Prometheus = PrometheusConf{Enabled: true, Path: "/metrics"}
		}, false},
		{"Prometheus path without slash", func(c *Config) {
			c.Metrics.Prometheus = PrometheusConf{Enabled: true, Path: "metrics"}
		}, true},
		{"Prometheus path at root", func(c *Config) {
			c.Metrics.Prometheus = PrometheusConf{Enabled: true, Path: "/"}
		}, true},
		{"Prometheus path under API prefix", func(c *Config) {
			c.Metrics.Prometheus = PrometheusConf{Enabled: true, Path: "/api/metrics"}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validator.Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
