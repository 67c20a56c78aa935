package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"
)

const (
	defaultConfigPath    = "configs/dsa.yaml"
	defaultLogLevel      = "warn"
	defaultQueueCapacity = 5
)

// LoadLabConfig reads the YAML file at path, or the one named by
// DSA_CONFIG_PATH when path is empty. When neither is set the default path is
// tried and a missing file just yields the defaults.
func LoadLabConfig(path string) (*LabConfig, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("DSA_CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
		explicit = false
	}

	var cfg LabConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *LabConfig) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.CircularQueue.Capacity == 0 {
		cfg.CircularQueue.Capacity = defaultQueueCapacity
	}
}

func (c *LabConfig) Validate() error {
	if c.CircularQueue.Capacity < 1 {
		return fmt.Errorf("circular_queue.capacity must be at least 1, got %d", c.CircularQueue.Capacity)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
