package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-pagegen/internal/config"
)

// dotEnvFile is read from the working directory at startup.
const dotEnvFile = ".env"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath      string   // PAGEGEN_CONFIG: config file name or path
	OutputDir       string   // PAGEGEN_OUTPUT_DIR: root for both output directories
	CityData        string   // PAGEGEN_CITY_DATA: city data file
	ServiceData     string   // PAGEGEN_SERVICE_DATA: service data file
	CityTemplate    string   // PAGEGEN_CITY_TEMPLATE: city template file
	ServiceTemplate string   // PAGEGEN_SERVICE_TEMPLATE: service template file
	Only            []string // PAGEGEN_ONLY: comma-separated passes
	Strict          *bool    // PAGEGEN_STRICT: nil when unset or unparsable
}

// knownEnvVars lists valid PAGEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PAGEGEN_CONFIG":           true,
	"PAGEGEN_OUTPUT_DIR":       true,
	"PAGEGEN_CITY_DATA":        true,
	"PAGEGEN_SERVICE_DATA":     true,
	"PAGEGEN_CITY_TEMPLATE":    true,
	"PAGEGEN_SERVICE_TEMPLATE": true,
	"PAGEGEN_ONLY":             true,
	"PAGEGEN_STRICT":           true,
}

// loadDotEnv adds the variables of a .env file to the process environment.
// Variables already set keep their values. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized PAGEGEN_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:      os.Getenv("PAGEGEN_CONFIG"),
		OutputDir:       os.Getenv("PAGEGEN_OUTPUT_DIR"),
		CityData:        os.Getenv("PAGEGEN_CITY_DATA"),
		ServiceData:     os.Getenv("PAGEGEN_SERVICE_DATA"),
		CityTemplate:    os.Getenv("PAGEGEN_CITY_TEMPLATE"),
		ServiceTemplate: os.Getenv("PAGEGEN_SERVICE_TEMPLATE"),
	}

	if only := os.Getenv("PAGEGEN_ONLY"); only != "" {
		for _, p := range strings.Split(only, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Only = append(cfg.Only, p)
			}
		}
	}

	// Parse bool for strict
	if strict := os.Getenv("PAGEGEN_STRICT"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			cfg.Strict = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PAGEGEN_* variables.
// Helps catch typos like PAGEGEN_OUTPUT instead of PAGEGEN_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PAGEGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CityData != "" {
		cfg.Data.Cities = env.CityData
	}
	if env.ServiceData != "" {
		cfg.Data.Services = env.ServiceData
	}
	if env.CityTemplate != "" {
		cfg.Templates.City = env.CityTemplate
	}
	if env.ServiceTemplate != "" {
		cfg.Templates.Service = env.ServiceTemplate
	}
	if env.Strict != nil {
		cfg.Build.Strict = *env.Strict
	}
}
