package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the run settings for crew.
type Config struct {
	Endpoint    string `toml:"endpoint" validate:"required,url,http_url"`
	Results     int    `toml:"results" validate:"min=1,max=5000"`
	Nationality string `toml:"nationality" validate:"required,nat_code"`
	Seed        string `toml:"seed" validate:"omitempty,alphanum,max=64"`
	LogLevel    string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFile     string `toml:"log_file" validate:"required"`
}

// Overrides carries command-line values that win over the file. Zero values
// leave the file setting in place.
type Overrides struct {
	Endpoint    string
	Results     int
	Nationality string
	Seed        string
	LogLevel    string
	LogFile     string
}

const (
	defaultConfigPath  = "~/.config/crew/config.toml"
	defaultEndpoint    = "https://randomuser.me/api/"
	defaultResults     = 12
	defaultNationality = "gb"
	defaultLogLevel    = "info"
	defaultLogFile     = "~/.local/state/crew/crew.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:    defaultEndpoint,
		Results:     defaultResults,
		Nationality: defaultNationality,
		LogLevel:    defaultLogLevel,
		LogFile:     mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// The result is validated before it is returned.
func Load(path string) (Config, error) {
	return LoadWithOverrides(path, Overrides{})
}

// LoadWithOverrides is Load with command-line overrides applied before
// validation.
func LoadWithOverrides(path string, over Overrides) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var raw Config
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg = merge(cfg, Overrides(raw))
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg = merge(cfg, over)
	cfg.Nationality = strings.ToLower(cfg.Nationality)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFile = mustExpand(cfg.LogFile)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge copies every non-empty value from over into cfg.
func merge(cfg Config, over Overrides) Config {
	if v := strings.TrimSpace(over.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if over.Results != 0 {
		cfg.Results = over.Results
	}
	if v := strings.TrimSpace(over.Nationality); v != "" {
		cfg.Nationality = v
	}
	if v := strings.TrimSpace(over.Seed); v != "" {
		cfg.Seed = v
	}
	if v := strings.TrimSpace(over.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(over.LogFile); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
