// Package config handles configuration loading, parsing, and validation
// from a config.yaml file and PARKY_* environment variables. It provides
// type-safe access to the settings of the API server and the web client
// while keeping configuration details separate from business logic.
package config
