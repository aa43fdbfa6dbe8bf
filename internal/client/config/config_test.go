package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jobboardhq/backoffice/internal/timex"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080/api/v1/admin", cfg.ServerBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 10*time.Second, cfg.LoginTimeout)
	require.Equal(t, "backoffice.db", cfg.SessionDBPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestApplyJsonOverridesOnlyPresentKeys(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	applyJson(&cfg, &JsonConfig{
		ServerBaseURL: "http://api.internal:9090/api/v1/admin",
		LoginTimeout:  timex.Duration{Duration: 5 * time.Second},
	})

	require.Equal(t, "http://api.internal:9090/api/v1/admin", cfg.ServerBaseURL)
	require.Equal(t, 5*time.Second, cfg.LoginTimeout)
	// Untouched keys keep their defaults.
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "backoffice.db", cfg.SessionDBPath)
}

func TestParseEnvOverridesOnlySetVariables(t *testing.T) {
	t.Setenv("BACKOFFICE_SERVER_URL", "http://env.example/api/v1/admin")
	t.Setenv("BACKOFFICE_LOGIN_TIMEOUT", "7s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "http://env.example/api/v1/admin", cfg.ServerBaseURL)
	require.Equal(t, 7*time.Second, cfg.LoginTimeout)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BACKOFFICE_SERVER_URL", "http://env.example/api/v1/admin")

	orig := os.Args
	os.Args = []string{"backoffice", "-s", "http://flag.example/api/v1/admin", "-t", "42"}
	t.Cleanup(func() { os.Args = orig })

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example/api/v1/admin", cfg.ServerBaseURL)
	require.Equal(t, 42*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigFromJsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "http://file.example/api/v1/admin",
		"request_timeout": "15s"
	}`), 0o600))

	orig := os.Args
	os.Args = []string{"backoffice", "-c", path}
	t.Cleanup(func() { os.Args = orig })

	cfg := LoadConfig()
	require.Equal(t, "http://file.example/api/v1/admin", cfg.ServerBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, 10*time.Second, cfg.LoginTimeout)
}
