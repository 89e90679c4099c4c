package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the engine configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from %s: %w", configPath, err)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: BELGIAN_LAW_DATABASE_PATH, BELGIAN_LAW_LOG_JSON, ...
	v.SetEnvPrefix("BELGIAN_LAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Project config beats the user-level one
	if configPath := findConfigFile(); configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		// Missing or unreadable files are not fatal: env vars and defaults
		// are enough to run against a packaged corpus.
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// findConfigFile looks for belgianlaw.toml in the working directory, then
// in ~/.belgianlaw/config.toml. Returns empty string when neither exists.
func findConfigFile() string {
	if cwd, err := os.Getwd(); err == nil {
		projectPath := filepath.Join(cwd, "belgianlaw.toml")
		if _, err := os.Stat(projectPath); err == nil {
			return projectPath
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	userPath := filepath.Join(homeDir, ".belgianlaw", "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}

	return ""
}
