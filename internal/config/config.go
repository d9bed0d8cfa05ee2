package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port" validate:"min=1,max=65535"`
	Language string         `yaml:"language" validate:"required"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Sessions SessionsConfig `yaml:"sessions"`
	Image    ImageConfig    `yaml:"image"`
	Log      LogConfig      `yaml:"log"`
}

type CatalogConfig struct {
	BaseURL  string        `yaml:"base_url" validate:"required,url"`
	Language string        `yaml:"language" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	MinQuery int           `yaml:"min_query" validate:"min=1"`
}

type SessionsConfig struct {
	Max int `yaml:"max" validate:"min=1"`
}

type ImageConfig struct {
	MaxParallel int           `yaml:"max_parallel" validate:"min=1,max=32"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Host:     "",
		Port:     8080,
		Language: "pt",
		Catalog: CatalogConfig{
			BaseURL:  "https://db.ygoprodeck.com/api/v7/cardinfo.php",
			Language: "pt",
			Timeout:  12 * time.Second,
			MinQuery: 3,
		},
		Sessions: SessionsConfig{Max: 1024},
		Image: ImageConfig{
			MaxParallel: 4,
			Timeout:     10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error. The PORT environment variable overrides the port.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
