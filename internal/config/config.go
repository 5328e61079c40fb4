// Package config loads the server configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Addr is the listen address for the HTTP server
	Addr string `yaml:"addr"`
	// DBPath is the SQLite database file location
	DBPath string `yaml:"db_path"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// AllowedOrigins are CORS origin patterns permitted with credentials
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist; environment variables
// override file values either way.
func Load() (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(configPath); readErr == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	config.applyDefaults()
	config.applyEnv()

	return config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
		AllowedOrigins: []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		},
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := defaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = defaults.AllowedOrigins
	}
	if c.DBPath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			c.DBPath = filepath.Join(homeDir, ".tablero", "tablero.db")
		} else {
			c.DBPath = "tablero.db"
		}
	}
}

// applyEnv overrides configuration from the environment
func (c *Config) applyEnv() {
	if addr := os.Getenv("TABLERO_ADDR"); addr != "" {
		c.Addr = addr
	}
	if dbPath := os.Getenv("TABLERO_DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}
	if level := os.Getenv("TABLERO_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}
