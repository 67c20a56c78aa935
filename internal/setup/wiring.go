package setup

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/config"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/console"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/programs"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	QueueCapacity int
	Styled        bool
}

type Dependencies struct {
	Runner   *menu.Runner
	Catalog  []programs.Entry
	Settings programs.Settings
	Logger   *zerolog.Logger
}

// LoadConfig reads the YAML file at configPath (see config.LoadLabConfig) and
// lets environment variables override it.
func LoadConfig(configPath string) (*Config, error) {
	lab, err := config.LoadLabConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lab config: %w", err)
	}

	return &Config{
		LogLevel:      getEnv("DSA_LOG_LEVEL", lab.LogLevel),
		QueueCapacity: getEnvInt("DSA_QUEUE_CAPACITY", lab.CircularQueue.Capacity),
		Styled:        !getEnvBool("DSA_PLAIN", !lab.Display.IsStyled()),
	}, nil
}

func Wire(cfg *Config, in io.Reader, out io.Writer, logger *zerolog.Logger) (*Dependencies, error) {
	if cfg.QueueCapacity < 1 {
		return nil, fmt.Errorf("queue capacity must be at least 1, got %d", cfg.QueueCapacity)
	}

	reader := console.NewReader(in, logger)
	runner := menu.NewRunner(reader, out, cfg.Styled, logger)

	return &Dependencies{
		Runner:   runner,
		Catalog:  programs.Catalog(),
		Settings: programs.Settings{QueueCapacity: cfg.QueueCapacity},
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
