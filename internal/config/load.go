package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. server.port becomes PARKY_SERVER_PORT.
const EnvPrefix = "PARKY"

// defaults lists every known key with its default value. Keys without a
// meaningful default are still listed so viper binds them to the environment.
var defaults = map[string]any{
	"server.port":             8080,
	"server.log_level":        "info",
	"database.driver":         "postgres",
	"database.url":            "",
	"database.max_open_conns": 10,
	"database.max_idle_conns": 5,
	"web.port":                8081,
	"web.api_base_url":        "http://localhost:8080",
	"web.timeout_seconds":     10,
}

var validate = validator.New()

// Load reads the API server configuration from an optional config.yaml and
// PARKY_* environment variables. Environment variables take precedence over
// values from the config file.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. The file must exist when
// path is not empty.
func LoadFile(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWeb reads the web client configuration from the same sources as Load.
func LoadWeb() (*WebConfig, error) {
	return LoadWebFile("")
}

// LoadWebFile is LoadWeb with an explicit config file.
func LoadWebFile(path string) (*WebConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}
