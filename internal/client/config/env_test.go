package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv_OverlaysOnlySetVariables(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv("SKILLSPHERE_SERVER_URL", "http://env-host:8080/api")
	t.Setenv("SKILLSPHERE_NOTIFICATION_TTL", "4s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env-host:8080/api", cfg.ServerURL)
	assert.Equal(t, 4*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func Test_parseEnv_LoadsDotenvWithoutOverriding(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"SKILLSPHERE_LOG_LEVEL=debug\nSKILLSPHERE_DATABASE_FILE=dotenv.db\n"), 0o600))

	// already present in the process: must win over the file
	t.Setenv("SKILLSPHERE_DATABASE_FILE", "process.db")
	// ensure the dotenv-provided key is unset before and cleaned after
	t.Setenv("SKILLSPHERE_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("SKILLSPHERE_LOG_LEVEL"))

	os.Args = []string{"testbin", "-e", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "process.db", cfg.DatabaseFile)
}

func Test_parseEnv_BadDurationPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv("SKILLSPHERE_REQUEST_TIMEOUT", "whenever")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
