package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{Storage: TokenStorageTypeEnv}}
	if err := cfg.ApplyDefaults(); err != nil {
		t.Fatalf("ApplyDefaults() error = %v", err)
	}

	if cfg.LogFormat != LogFormatText {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, LogFormatText)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %s, want 30s", cfg.API.Timeout)
	}
	if cfg.API.UserAgent == "" {
		t.Error("API.UserAgent not defaulted")
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("API.BaseURL = %q, want no default", cfg.API.BaseURL)
	}
	if cfg.Auth.EnvKey != DefaultConfigAuthEnvKey {
		t.Errorf("Auth.EnvKey = %q, want %q", cfg.Auth.EnvKey, DefaultConfigAuthEnvKey)
	}
}

func TestApplyDefaults_StorageDefaultsToKeyring(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		t.Skipf("cannot detect current user: %v", err)
	}
	if cfg.Auth.Storage != TokenStorageTypeKeyring {
		t.Errorf("Auth.Storage = %q, want keyring", cfg.Auth.Storage)
	}
	if cfg.Auth.KeyringUser == "" {
		t.Error("Auth.KeyringUser not detected")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogFormat: LogFormatText,
			Output:    OutputText,
			API: APIConfig{
				BaseURL: "https://api.gigshift.example",
				Timeout: 10 * time.Second,
			},
			Auth: AuthConfig{
				Storage: TokenStorageTypeFile,
				File:    filepath.Join(t.TempDir(), "token"),
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: "BaseURL"},
		{name: "relative base url", mutate: func(c *Config) { c.API.BaseURL = "/api" }, wantErr: "BaseURL"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, wantErr: "Timeout"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "LogFormat"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "yaml" }, wantErr: "Output"},
		{name: "bad exporter", mutate: func(c *Config) { c.LogExporter = "zipkin" }, wantErr: "LogExporter"},
		{name: "otlp exporter", mutate: func(c *Config) { c.LogExporter = "otlp-grpc" }},
		{name: "unknown storage", mutate: func(c *Config) { c.Auth.Storage = "vault" }, wantErr: "Storage"},
		{name: "file storage without path", mutate: func(c *Config) { c.Auth.File = "" }, wantErr: "file path required"},
		{
			name: "env storage without key",
			mutate: func(c *Config) {
				c.Auth.Storage = TokenStorageTypeEnv
			},
			wantErr: "env_key required",
		},
		{
			name: "keyring without user",
			mutate: func(c *Config) {
				c.Auth.Storage = TokenStorageTypeKeyring
			},
			wantErr: "keyring_user required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewTokenStore(t *testing.T) {
	for _, storage := range []TokenStorageType{TokenStorageTypeFile, TokenStorageTypeEnv, TokenStorageTypeKeyring} {
		a := &AuthConfig{
			Storage:     storage,
			File:        filepath.Join(t.TempDir(), "token"),
			EnvKey:      "GIGSHIFT_TEST_TOKEN",
			KeyringUser: "tester",
		}
		store, err := a.NewTokenStore()
		if err != nil {
			t.Errorf("NewTokenStore(%s) error = %v", storage, err)
		}
		if store == nil {
			t.Errorf("NewTokenStore(%s) returned nil store", storage)
		}
	}

	a := &AuthConfig{Storage: "vault"}
	if _, err := a.NewTokenStore(); err == nil {
		t.Error("NewTokenStore(vault) = nil error, want unsupported storage")
	}
}
