// Package config resolves vectap configuration from flags, environment
// variables and the YAML config file, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete vectap configuration.
type Config struct {
	Qdrant  QdrantConfig  `mapstructure:"qdrant"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// QdrantConfig describes the managed container.
type QdrantConfig struct {
	// ContainerName uniquely identifies the managed container on the host.
	ContainerName string `mapstructure:"container_name"`
	// Port is the fixed host port mapped to the same container port.
	Port int `mapstructure:"port"`
	// Image is the pinned, version-qualified image reference.
	Image string `mapstructure:"image"`
	// DataDir overrides the storage directory; empty means resolve by the
	// workspace → global storage → home precedence chain.
	DataDir string `mapstructure:"data_dir"`
	// Workspace scopes the default data directory to a project checkout.
	Workspace string `mapstructure:"workspace"`
	// Runtime is the container runtime CLI binary.
	Runtime string `mapstructure:"runtime"`
}

// NotifyConfig describes push notification delivery.
type NotifyConfig struct {
	// Endpoint is the ntfy-compatible server base URL.
	Endpoint string `mapstructure:"endpoint"`
	// Topic is appended to the endpoint URL when set.
	Topic string `mapstructure:"topic"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Qdrant: QdrantConfig{
			ContainerName: "vectap-qdrant",
			Port:          6333,
			Image:         "qdrant/qdrant:v1.12.1",
			Runtime:       "docker",
		},
		Notify: NotifyConfig{},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every key with viper so values resolve even without
// a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("qdrant.container_name", defaults.Qdrant.ContainerName)
	viper.SetDefault("qdrant.port", defaults.Qdrant.Port)
	viper.SetDefault("qdrant.image", defaults.Qdrant.Image)
	viper.SetDefault("qdrant.data_dir", defaults.Qdrant.DataDir)
	viper.SetDefault("qdrant.workspace", defaults.Qdrant.Workspace)
	viper.SetDefault("qdrant.runtime", defaults.Qdrant.Runtime)

	viper.SetDefault("notify.endpoint", defaults.Notify.Endpoint)
	viper.SetDefault("notify.topic", defaults.Notify.Topic)

	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and
// validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the manager cannot work with.
func (c *Config) Validate() error {
	if c.Qdrant.ContainerName == "" {
		return fmt.Errorf("qdrant.container_name must not be empty")
	}
	if c.Qdrant.Port < 1 || c.Qdrant.Port > 65535 {
		return fmt.Errorf("qdrant.port %d is out of range", c.Qdrant.Port)
	}
	if c.Qdrant.Runtime == "" {
		return fmt.Errorf("qdrant.runtime must not be empty")
	}
	// A floating image reference would silently change the deployed version.
	if !strings.Contains(c.Qdrant.Image, ":") || strings.HasSuffix(c.Qdrant.Image, ":latest") {
		return fmt.Errorf("qdrant.image %q must be a pinned, version-qualified reference", c.Qdrant.Image)
	}
	return nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vectap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vectap"
	}
	return filepath.Join(home, ".config", "vectap")
}
