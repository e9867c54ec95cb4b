// Package config loads and validates the service configuration from a YAML
// file with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/medigraph/symptomgraph/pkg/dataset"
	"github.com/medigraph/symptomgraph/pkg/validation"
)

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AuthSecret enables JWT bearer auth on the diagnose endpoint when set.
	// Must be at least 32 characters. Prefer the SYMPTOMGRAPH_AUTH_SECRET
	// environment variable over the file.
	AuthSecret string `yaml:"auth_secret"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the root service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    dataset.Files `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns a configuration with sane defaults and no data paths.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path, fills in defaults, and applies
// environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			c.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if secret := os.Getenv("SYMPTOMGRAPH_AUTH_SECRET"); secret != "" {
		c.Server.AuthSecret = secret
	}
}

func (c *Config) applyDefaults() {
	defaults := Default()
	c.Server.Port = validation.DefaultOr(c.Server.Port, defaults.Server.Port)
	c.Server.ReadTimeout = validation.DefaultOrDuration(c.Server.ReadTimeout, defaults.Server.ReadTimeout)
	c.Server.WriteTimeout = validation.DefaultOrDuration(c.Server.WriteTimeout, defaults.Server.WriteTimeout)
	c.Server.IdleTimeout = validation.DefaultOrDuration(c.Server.IdleTimeout, defaults.Server.IdleTimeout)
	c.Server.ShutdownTimeout = validation.DefaultOrDuration(c.Server.ShutdownTimeout, defaults.Server.ShutdownTimeout)
	c.Logging.Level = validation.DefaultOr(c.Logging.Level, defaults.Logging.Level)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		RangeInt("server.port", c.Server.Port, 1, 65535).
		MinDuration("server.read_timeout", c.Server.ReadTimeout, time.Second).
		MinDuration("server.write_timeout", c.Server.WriteTimeout, time.Second).
		MinDuration("server.shutdown_timeout", c.Server.ShutdownTimeout, time.Second).
		Required("data.severity_file", c.Data.Severity).
		Required("data.relationship_file", c.Data.Relationship).
		Required("data.description_file", c.Data.Description).
		Required("data.precaution_file", c.Data.Precaution).
		OneOf("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}).
		When(c.Server.AuthSecret != "", func(cv *validation.ConfigValidator) {
			cv.Custom("server.auth_secret", func() error {
				if len(c.Server.AuthSecret) < 32 {
					return fmt.Errorf("must be at least 32 characters, got %d", len(c.Server.AuthSecret))
				}
				return nil
			})
		}).
		Validate()
}
