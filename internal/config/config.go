package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines runtime configuration for the tt CLI.
type Config struct {
	DB  DBConfig  `yaml:"db"`
	Log LogConfig `yaml:"log"`
	TZ  string    `yaml:"tz"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables win over the file, which wins over
// defaults. The default database lives under ~/.tt/.
func Load() (Config, error) {
	cfg := Config{
		DB:  DBConfig{Path: defaultDBPath()},
		Log: LogConfig{Level: "info"},
	}

	if path := os.Getenv("TT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("TT_DB"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("TT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if tz := os.Getenv("TT_TZ"); tz != "" {
		cfg.TZ = tz
	}

	return cfg, nil
}

// Location resolves the configured timezone, defaulting to the system
// local zone when unset.
func (c Config) Location() (*time.Location, error) {
	if c.TZ == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("invalid tz %q: %w", c.TZ, err)
	}
	return loc, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tt.db"
	}
	return filepath.Join(home, ".tt", "tt.db")
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
