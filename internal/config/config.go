package config

// Config holds the API server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// WebConfig holds the configuration of the web client application, which
// talks to the API over HTTP and never opens the database itself.
type WebConfig struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Web    ClientConfig `mapstructure:"web" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the GORM dialector: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	// URL is a postgres connection URL or a sqlite file path (DSN).
	URL          string `mapstructure:"url" validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// ClientConfig contains the settings the web client uses to reach the API.
type ClientConfig struct {
	Port           int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	APIBaseURL     string `mapstructure:"api_base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}
