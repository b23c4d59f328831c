package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, want http://localhost:8080", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.SessionFile == "" {
		t.Error("SessionFile should have a default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
		wantErr    bool
		validate   func(*testing.T, *Config)
	}{
		{
			name: "valid file overrides defaults",
			configYAML: `
api_url: http://pos.example.com:9000
timeout: 5s
log_level: debug
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.APIURL != "http://pos.example.com:9000" {
					t.Errorf("APIURL = %q", cfg.APIURL)
				}
				if cfg.Timeout != 5*time.Second {
					t.Errorf("Timeout = %v", cfg.Timeout)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %q", cfg.LogLevel)
				}
			},
		},
		{
			name:       "malformed yaml",
			configYAML: "api_url: [not, a, string",
			wantErr:    true,
		},
		{
			name:       "invalid url rejected",
			configYAML: "api_url: '::nope'",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.configYAML), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POSCTL_API_URL", "http://10.0.0.5:8080")
	t.Setenv("POSCTL_TIMEOUT", "2s")
	t.Setenv("POSCTL_SESSION_FILE", "/tmp/posctl-test-session.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL != "http://10.0.0.5:8080" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.SessionFile != "/tmp/posctl-test-session.json" {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"empty url", func(c *Config) { c.APIURL = "" }, true},
		{"relative url", func(c *Config) { c.APIURL = "localhost" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"empty session file", func(c *Config) { c.SessionFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
