package main

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the optional YAML file that seeds flag defaults.
type Config struct {
	Ledger    string `yaml:"ledger"`
	Processes int    `yaml:"processes"`
	LogLevel  string `yaml:"logLevel"`
	Format    string `yaml:"format"`
}

// loadConfig reads the config file at path. A missing or unset file yields
// an empty config; a malformed one is an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) ledgerOrDefault() string {
	if c.Ledger != "" {
		return c.Ledger
	}
	return defaultLedgerPath()
}

func (c *Config) processesOrDefault() int {
	if c.Processes > 0 && c.Processes <= runtime.GOMAXPROCS(0) {
		return c.Processes
	}
	return 1
}

func (c *Config) logLevelOrDefault() string {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return c.LogLevel
	}
	return "info"
}

func (c *Config) formatOrDefault() string {
	switch c.Format {
	case "html", "markdown":
		return c.Format
	}
	return "html"
}
