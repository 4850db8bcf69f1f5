// Package config loads tool configuration from hexmap.yml, with
// environment variable overrides and sane defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the hexmap configuration.
type Config struct {
	Manifest string           `mapstructure:"manifest"`
	Server   ServerConfig     `mapstructure:"server"`
	Export   ExportConfig     `mapstructure:"export"`
	Validate ValidationConfig `mapstructure:"validate"`
}

// ServerConfig represents the query server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ExportConfig represents export defaults.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ValidationConfig tunes the rule run.
type ValidationConfig struct {
	Strict                bool `mapstructure:"strict"`
	GodComponentThreshold int  `mapstructure:"god_component_threshold"`
}

// Addr returns the server listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads the configuration from hexmap.yml or hexmap.yaml.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("manifest", "hexmap.json")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8087)
	v.SetDefault("export.format", "mermaid")
	v.SetDefault("export.output", "")
	v.SetDefault("validate.strict", false)
	v.SetDefault("validate.god_component_threshold", 10)

	v.SetConfigName("hexmap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HEXMAP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InProject checks whether the current directory carries a hexmap config
// or manifest.
func InProject() bool {
	for _, name := range []string{"hexmap.yml", "hexmap.yaml", "hexmap.json"} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	return false
}

// GetProjectRoot walks upward looking for a hexmap config or manifest.
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{"hexmap.yml", "hexmap.yaml", "hexmap.json"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a hexmap project (no hexmap.yml found)")
		}
		dir = parent
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 0-65535, got: %d", cfg.Server.Port)
	}
	if cfg.Validate.GodComponentThreshold < 0 {
		return fmt.Errorf("validate.god_component_threshold must not be negative, got: %d",
			cfg.Validate.GodComponentThreshold)
	}
	return nil
}
