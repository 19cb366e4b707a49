// Package proverconfig loads the optional YAML configuration file
// that supplies the search engine's safety limits.
package proverconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"foplprover/internal/prover/search"
)

// Config holds the optional host-imposed limits named in §6: zero
// means unbounded for either field.
type Config struct {
	MaxClauses int `yaml:"max_clauses"`
	MaxLevels  int `yaml:"max_levels"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Limits converts the config into search.Limits.
func (c *Config) Limits() search.Limits {
	if c == nil {
		return search.Limits{}
	}
	return search.Limits{MaxClauses: c.MaxClauses, MaxLevels: c.MaxLevels}
}
