package config

import (
	"github.com/spf13/viper"
)

// Server identity defaults. These mirror the dataset distribution the engine
// was built for and show up in MCP handshakes and the about tool.
const (
	DefaultServerName    = "belgian-legal-citations"
	DefaultServerVersion = "1.0.0"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "belgian-law.db")

	// Server identity defaults
	v.SetDefault("server.name", DefaultServerName)
	v.SetDefault("server.version", DefaultServerVersion)

	// Logging defaults
	v.SetDefault("log.json", false)
}
