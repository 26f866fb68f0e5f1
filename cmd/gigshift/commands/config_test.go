package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigshift/gigshift/internal/app"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	tokenPath := filepath.Join(t.TempDir(), "token")

	configPath := writeFile(t, "config.toml", `
log_format = "json"
log_level = "debug"

[api]
base_url = "https://file.example.com"
timeout = "5s"

[auth]
storage = "file"
file = "`+tokenPath+`"
`)
	envFile := writeFile(t, ".env", "GIGSHIFT_API__BASE_URL=https://dotenv.example.com\nGIGSHIFT_OUTPUT=json\n")
	environ := func() []string {
		return []string{"GIGSHIFT_API__BASE_URL=https://env.example.com", "UNRELATED=1"}
	}

	cfg, err := loadConfig(configPath, envFile, nil, environ)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL, "environment beats .env and file")
	assert.Equal(t, app.OutputJSON, cfg.Output, ".env beats defaults")
	assert.Equal(t, app.LogFormatJSON, cfg.LogFormat, "file value kept")
	assert.Equal(t, "DEBUG", cfg.LogLevel.String())
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, app.TokenStorageTypeFile, cfg.Auth.Storage)
	assert.Equal(t, tokenPath, cfg.Auth.File)
	assert.Equal(t, app.DefaultConfigUserAgent, cfg.API.UserAgent, "defaults fill the rest")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	none := func() []string { return nil }

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), "", nil, none)
	assert.ErrorContains(t, err, "loading config file")

	_, err = loadConfig("", filepath.Join(t.TempDir(), "missing.env"), nil, none)
	assert.ErrorContains(t, err, "loading env file")

	_, err = loadConfig("", "", nil, func() []string {
		return []string{"GIGSHIFT_AUTH__STORAGE=env"}
	})
	assert.ErrorContains(t, err, "invalid config", "base URL has no default")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	h := newHarness(t)
	t.Setenv("GIGSHIFT_API__BASE_URL", "https://env.example.com")
	t.Setenv("GIGSHIFT_API__TIMEOUT", "3s")

	stdout, _, err := h.run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, h.srv.URL, "flag wins")
	assert.NotContains(t, stdout, "env.example.com")
	assert.Contains(t, stdout, "timeout = '3s'")
}

func TestConfigInit(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "gigshift", "config.toml")

	stdout, _, err := h.run(t, "", "config", "init", "--base-url", "https://api.example.com", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "base_url = 'https://api.example.com'")
	assert.Contains(t, content, "# debug, info, warn or error")
	assert.True(t, strings.Contains(content, "[api]") && strings.Contains(content, "[auth]"))

	_, _, err = h.run(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = h.run(t, "", "config", "init", "--force", path)
	require.NoError(t, err)

	cfg, err := loadConfig(path, "", nil, func() []string { return nil })
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL, "overwrite keeps the configured backend")
	assert.Equal(t, app.DefaultConfigAPITimeout, cfg.API.Timeout)

	_, _, err = h.run(t, "", "config", "init", "--force", "--base-url", "https://staging.example.com", path)
	require.NoError(t, err)

	cfg, err = loadConfig(path, "", nil, func() []string { return nil })
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.API.BaseURL)
}

func TestConfigInit_DefaultBaseURL(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	_, _, err := h.run(t, "", "config", "init", path)
	require.NoError(t, err)

	cfg, err := loadConfig(path, "", nil, func() []string { return nil })
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
}
