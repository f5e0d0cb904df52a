package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/validator"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Seed      uint64    `yaml:"seed" env:"SEED" env-default:"0"`
	Heuristic Heuristic `yaml:"heuristic"`
	Metrics   Metrics   `yaml:"metrics"`
}

const (
	defaultEasyProbability   = 0.3
	defaultMediumProbability = 0.7
)

// Heuristic holds the probability of playing the win/block/center strategy per tier.
// Defaults are seeded before reading: env-default would overwrite an explicit 0.
type Heuristic struct {
	Easy   float64 `yaml:"easy" env:"HEURISTIC_EASY" validate:"gte=0,lte=1"`
	Medium float64 `yaml:"medium" env:"HEURISTIC_MEDIUM" validate:"gte=0,lte=1"`
}

type Metrics struct {
	Enabled  bool          `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Endpoint string        `yaml:"endpoint" env:"METRICS_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Enabled true"`
	Interval time.Duration `yaml:"interval" env:"METRICS_INTERVAL" env-default:"10s" validate:"gt=0"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when it is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{
		Heuristic: Heuristic{
			Easy:   defaultEasyProbability,
			Medium: defaultMediumProbability,
		},
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
