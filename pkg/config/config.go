package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for pipecheckd.
type Config struct {
	ListenAddr string `yaml:"listenAddr"`
	LogLevel   string `yaml:"logLevel"`
	LogFormat  string `yaml:"logFormat"`
	// AllowedOrigins is the CORS allow-list. Local development origins are
	// always permitted in addition to this list.
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// LoadConfig loads configuration from an optional YAML file and environment
// overrides. Environment variables win over file values.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr: ":8000",
		LogLevel:   "info",
		LogFormat:  "json",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("PIPECHECK_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if logLevel := os.Getenv("PIPECHECK_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat := os.Getenv("PIPECHECK_LOG_FORMAT"); logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if origins := os.Getenv("PIPECHECK_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = SplitOrigins(origins)
	}

	return cfg, nil
}

// SplitOrigins parses a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func SplitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

// DefaultConfigPath returns the default location for the config file.
func DefaultConfigPath() string {
	if path := os.Getenv("PIPECHECK_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pipecheck", "config.yaml")
}
