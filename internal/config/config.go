package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shopipy/posctl/internal/errors"
)

// Config holds client configuration
type Config struct {
	// APIURL is the base URL of the POS backend
	APIURL string `yaml:"api_url"`

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration `yaml:"timeout"`

	// SessionFile is where the session token and cached role are persisted
	SessionFile string `yaml:"session_file"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		APIURL:      "http://localhost:8080",
		Timeout:     30 * time.Second,
		SessionFile: defaultSessionFile(),
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".posctl", "session.json")
	}
	return filepath.Join(dir, "posctl", "session.json")
}

// DefaultConfigFile returns the path read when no --config flag is given
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".posctl", "config.yaml")
	}
	return filepath.Join(dir, "posctl", "config.yaml")
}

// Load builds the effective configuration: defaults, then the optional YAML
// file at path, then environment variables. A missing file is not an error;
// a malformed one is.
func Load(path string) (*Config, error) {
	// Best effort: a .env in the working directory seeds the environment.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeConfigRead, fmt.Sprintf("read config file: %s", path), err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(errors.ErrCodeConfigInvalid, fmt.Sprintf("parse config file: %s", path), err)
			}
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("POSCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("POSCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("POSCTL_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("POSCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("POSCTL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Validate validates a configuration
func Validate(cfg *Config) error {
	if cfg.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty")
	}
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("api_url is not a valid URL: %q", cfg.APIURL))
	}
	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "timeout must be positive")
	}
	if cfg.SessionFile == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "session_file must not be empty")
	}
	return nil
}
