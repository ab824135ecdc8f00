package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"ARENA_LOG_LEVEL" env-default:"info"`
	Game       string `yaml:"game" env:"ARENA_GAME" env-default:"tictactoe"`
	Agent      string `yaml:"agent" env:"ARENA_AGENT" env-default:"mcts"`
	Iterations int    `yaml:"iterations" env:"ARENA_ITERATIONS" env-default:"1000"`
	Runs       int    `yaml:"runs" env:"ARENA_RUNS" env-default:"100"`
	Seed       int64  `yaml:"seed" env:"ARENA_SEED" env-default:"0"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"ARENA_REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"ARENA_REDIS_PORT" env-default:"6379"`
}

// Load reads the config file when it exists and falls back to environment
// variables and defaults otherwise; the CLI must run without any file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// GetRedisAddr is the archive address, or empty when archiving is off.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
