// Package config handles the students service configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"students/internal/domain"
)

const (
	DefaultBasePath = "/v1/students"
	DefaultListen   = ":8080"
)

// Environment overrides.
const (
	EnvListen     = "STUDENTS_LISTEN"
	EnvBasePath   = "STUDENTS_BASE_PATH"
	EnvDBPassword = "STUDENTS_DB_PASSWORD"
)

// Config represents the students.yaml configuration file.
type Config struct {
	BasePath   string                    `yaml:"basePath" validate:"required,startswith=/"`
	Listen     string                    `yaml:"listen" validate:"required"`
	SchemaFile string                    `yaml:"schemaFile,omitempty"`
	Database   domain.DatabaseConnection `yaml:"database"`
	// Queries maps a resource path to the query fetching its rows.
	Queries map[string]string `yaml:"queries" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// Load reads a Config from a file path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a Config from r, applies defaults and environment overrides,
// and validates the result.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty configuration")
		}
		return nil, err
	}
	cfg.applyDefaults()
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Database.PasswordSource == "" {
		c.Database.PasswordSource = "env"
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvListen); v != "" {
		c.Listen = v
	}
	if v := getenv(EnvBasePath); v != "" {
		c.BasePath = v
	}
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	for path := range c.Queries {
		if _, err := domain.LookupResource(path); err != nil {
			return fmt.Errorf("invalid configuration: queries: %w", err)
		}
	}
	return nil
}
