package config

import (
	"ctchen222/tictactoe-console/internal/validator"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	BoardSize   int       `yaml:"board-size" env:"TTT_BOARD_SIZE" env-default:"0" validate:"boardsize"`
	SizeWeights []int     `yaml:"size-weights" env:"TTT_SIZE_WEIGHTS" env-default:"6,4,2,1" validate:"min=1,max=4,dive,min=0"`
	Color       bool      `yaml:"color" env:"TTT_COLOR" env-default:"false"`
	Telemetry   Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"TTT_OTLP_ENDPOINT" validate:"omitempty,hostname_port"`
	ServiceName string `yaml:"service-name" env:"TTT_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Load reads the YAML file at path, when given, and the environment, then validates the result.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load the configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// RandomSize reports whether the board size should be drawn from SizeWeights.
func (that *Config) RandomSize() bool {
	return that.BoardSize == 0
}
