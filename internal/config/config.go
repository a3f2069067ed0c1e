package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the finwatch client.
type Config struct {
	API     API     `yaml:"api"`
	Session Session `yaml:"session"`
	Logging Logging `yaml:"logging"`
}

// API holds the backend endpoint configuration.
type API struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Session holds client-side credential persistence settings.
type Session struct {
	TokenPath string `yaml:"token_path"`
}

// Logging configures the application logger. The TUI owns the terminal, so
// log output goes to a file.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: API{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		Session: Session{
			TokenPath: filepath.Join(home, ".finwatch", "token"),
		},
		Logging: Logging{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "finwatch.log"),
		},
	}
}

// Load reads the YAML configuration file at the given path, parses it into a
// Config struct, and then applies environment variable overrides. A missing
// file is not an error: defaults plus env overrides are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FINWATCH_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("FINWATCH_TOKEN_PATH"); v != "" {
		cfg.Session.TokenPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
