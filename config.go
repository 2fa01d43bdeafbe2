package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the few knobs the application has. Values come from an
// optional settings.yaml, with COMIC_* environment variables taking
// precedence, and command-line flags over both.
type Config struct {
	// CatalogPath is the CSV file acting as the system of record for the
	// available compartment.
	CatalogPath string `yaml:"catalog_path" env:"COMIC_CATALOG"`
	// ReportDir is where exported reports are written.
	ReportDir string `yaml:"report_dir" env:"COMIC_REPORT_DIR"`
}

// LoadConfig reads the settings file at path, if it exists, and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		CatalogPath: "comic.csv",
		ReportDir:   ".",
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
