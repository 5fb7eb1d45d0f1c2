// Package config loads application configuration from an optional YAML
// file and KOTOBA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Env           string        `mapstructure:"env"`            // local, production
	QuizzesDir    string        `mapstructure:"quizzes_dir"`    // directory probed for quizN.json files
	DBPath        string        `mapstructure:"db_path"`        // sqlite history database ("" = default path)
	LogFile       string        `mapstructure:"log_file"`       // zap output file ("" = default path)
	AutoplayDelay time.Duration `mapstructure:"autoplay_delay"` // pause between autoplay steps
}

// Load reads configuration from config.yaml (working directory or
// $XDG_CONFIG_HOME/kotoba) and the environment. Every key has a default,
// so a missing file is fine.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault("env", "local")
	v.SetDefault("quizzes_dir", "quizzes")
	v.SetDefault("db_path", "")
	v.SetDefault("log_file", "")
	v.SetDefault("autoplay_delay", "150ms")

	v.SetEnvPrefix("kotoba")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.AutoplayDelay <= 0 {
		return nil, fmt.Errorf("autoplay_delay must be positive, got %s", cfg.AutoplayDelay)
	}

	return &cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/kotoba, falling back to
// ~/.config/kotoba.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "kotoba"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "kotoba"), nil
}
