package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`

	App struct {
		// Secret salts the reward transaction fingerprint. Process-wide,
		// never part of a request.
		Secret string `yaml:"secret"`
	} `yaml:"app"`
}

// LoadConfig reads the configuration file and applies environment overrides.
// A missing file is not an error; everything can come from the environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONGO_URL"); v != "" {
		cfg.Database.URI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("APP_SECRET"); v != "" {
		cfg.App.Secret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8001
	}
	if cfg.Database.URI == "" {
		cfg.Database.URI = "mongodb://localhost:27017"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "daily_bite_db"
	}
	if cfg.App.Secret == "" {
		cfg.App.Secret = "default-secret"
	}
}
