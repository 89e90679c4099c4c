// Package config loads the citation engine configuration with Viper.
//
// Precedence (lowest to highest): defaults < config file < environment.
// The corpus database path is the only setting most deployments touch; it
// can be set via BELGIAN_LAW_DATABASE_PATH without any config file present.
package config

// Config represents the engine configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite corpus snapshot
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the MCP server identity
type ServerConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON to stderr instead of console output
}
