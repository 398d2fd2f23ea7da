package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the well-known config file name looked up in the working
// directory.
const Filename = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	// Ledger is the path of the ledger file used when a command gets none.
	Ledger string       `yaml:"ledger"`
	Render RenderConfig `yaml:"render"`
}

// RenderConfig holds default renderer options.
type RenderConfig struct {
	// Transfers lists contributing transfers under every account.
	Transfers bool `yaml:"transfers"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config pointing at a ledger file.
func Default(ledgerPath string) *Config {
	return &Config{
		Ledger: ledgerPath,
	}
}
