// Package config loads the service configuration from an optional YAML file.
// Every setting has a sensible default so the service runs with no file at
// all; the field catalog override keeps the header-matching table as data
// rather than code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = "8084"
	defaultCompanyName = "Triple E"
)

// Config is the root application configuration.
type Config struct {
	Port        string         `yaml:"port"`
	CompanyName string         `yaml:"companyName"`
	Currency    CurrencyConfig `yaml:"currency"`
	Fields      []FieldConfig  `yaml:"fields"`
}

// CurrencyConfig selects the currency rendering used on documents and in API
// output. Symbol is the prefix for the manual fallback formatter.
type CurrencyConfig struct {
	Code   string `yaml:"code"`
	Locale string `yaml:"locale"`
	Symbol string `yaml:"symbol"`
}

// FieldConfig overrides the candidate substrings for one semantic field.
// Entries are matched in the order they appear in the file.
type FieldConfig struct {
	Field      string   `yaml:"field"`
	Candidates []string `yaml:"candidates"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:        defaultPort,
		CompanyName: defaultCompanyName,
		Currency: CurrencyConfig{
			Code:   "NGN",
			Locale: "en-NG",
			Symbol: "₦",
		},
	}
}

// Load reads the configuration at path, overlaying it on the defaults.
// An empty path or a missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = defaultCompanyName
	}
	if cfg.Currency.Code == "" {
		cfg.Currency = Default().Currency
	}

	return cfg, nil
}
