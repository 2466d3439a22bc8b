package application

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	billing "theater-billing/internal/billing/domain"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// CatalogConfig selects where plays are loaded from.
type CatalogConfig struct {
	Source string          `yaml:"source"`
	File   string          `yaml:"file"`
	Table  string          `yaml:"table"`
	Plays  billing.Catalog `yaml:"plays"`
}

// Config defines billing configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Formats []string      `yaml:"formats"`
}

// DefaultFormats lists every statement format the service can render.
var DefaultFormats = []string{"text", "html", "json", "pdf", "xlsx"}

// LoadConfig loads config from yaml or env.
func LoadConfig() (Config, error) {
	cfg := Config{
		Catalog: CatalogConfig{
			Source: getenvDefault("CATALOG_SOURCE", ""),
			File:   os.Getenv("PLAYS_FILE"),
			Table:  getenvDefault("PLAYS_TABLE", "plays"),
		},
		Formats: splitCSV(os.Getenv("STATEMENT_FORMATS")),
	}

	if path := os.Getenv("BILLING_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Catalog.Source == "" {
		switch {
		case cfg.Catalog.File != "":
			cfg.Catalog.Source = CatalogSourceFile
		case len(cfg.Catalog.Plays) > 0:
			cfg.Catalog.Source = CatalogSourceMemory
		default:
			cfg.Catalog.Source = CatalogSourcePostgres
		}
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = DefaultFormats
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceMemory:
		for id, play := range c.Catalog.Plays {
			if !play.Type.Known() {
				return fmt.Errorf("billing config: play %q: %w", id, &billing.UnknownPlayTypeError{Type: play.Type})
			}
		}
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return errors.New("billing config: catalog file required")
		}
	case CatalogSourcePostgres:
		if c.Catalog.Table == "" {
			return errors.New("billing config: catalog table required")
		}
	default:
		return fmt.Errorf("billing config: unknown catalog source %q", c.Catalog.Source)
	}
	for _, format := range c.Formats {
		if !isKnownFormat(format) {
			return fmt.Errorf("billing config: unknown format %q", format)
		}
	}
	return nil
}

// FormatEnabled reports whether a statement format is served.
func (c Config) FormatEnabled(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func isKnownFormat(format string) bool {
	for _, f := range DefaultFormats {
		if f == format {
			return true
		}
	}
	return false
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
