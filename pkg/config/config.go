package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	xdgAppName = "orgsync"
	configFile = "config.yaml"
)

// Config holds everything the CLI needs. Values come from the YAML
// config file with environment variables taking precedence; the API
// token is a secret and only ever read from the environment.
type Config struct {
	Token   string `yaml:"-" env:"TODOIST_TOKEN"`
	Outline string `yaml:"outline" env:"ORGSYNC_OUTLINE" env-default:""`
	BaseURL string `yaml:"base_url" env:"ORGSYNC_BASE_URL" env-default:""`
}

// Path returns the XDG location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, configFile), nil
}

// Load reads the config from the XDG path, falling back to environment
// variables alone when no file exists.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit file path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// Save writes the non-secret fields back to the XDG config file.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	body := ""
	if cfg.Outline != "" {
		body += fmt.Sprintf("outline: %s\n", cfg.Outline)
	}
	if cfg.BaseURL != "" {
		body += fmt.Sprintf("base_url: %s\n", cfg.BaseURL)
	}
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
