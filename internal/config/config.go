// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from a YAML file on top of the defaults.
// A missing file at the default location yields the defaults; a missing explicit file is an error.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFile
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFile) {
			fmt.Printf("Config file '%s' not found, using default values for all sections.\n", loadPath)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(fileBytes, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Logger.Backend == "" {
		cfg.Logger.Backend = DefaultLoggerBackend
	}
	if cfg.Summaries.DefaultCurrency == "" {
		cfg.Summaries.DefaultCurrency = DefaultSummariesCurrency
	}

	fmt.Printf("Configuration loaded from '%s'\n", loadPath)
	return cfg, nil
}
