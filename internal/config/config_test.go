package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":memory:", cfg.DB.DSN())
	assert.Equal(t, 1500*time.Millisecond, cfg.Delays.Typing)
	assert.Equal(t, 2*time.Second, cfg.Delays.Optimize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "campwise")
	t.Setenv("DB_USER", "camper")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("TYPING_DELAY", "10ms")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("PROFILE_USER_ID", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.APIPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Millisecond, cfg.Delays.Typing)
	assert.Equal(t, Sessions{IdleTTL: 5 * time.Minute, Sweep: time.Minute}, cfg.Sessions)
	assert.Equal(t, 7, cfg.Profile.UserID)
	assert.Equal(t, "host=db port=5432 user=camper password=secret dbname=campwise sslmode=disable", cfg.DB.DSN())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_port: "7000"
log_level: warn
db:
  driver: sqlite
  path: /tmp/campwise.db
delays:
  typing: 250ms
profile:
  user_id: 3
  name: Sam
`), 0o600))
	t.Setenv("CAMPWISE_CONFIG", path)
	t.Setenv("API_PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.APIPort)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/campwise.db", cfg.DB.DSN())
	assert.Equal(t, 250*time.Millisecond, cfg.Delays.Typing)
	assert.Equal(t, 2*time.Second, cfg.Delays.Optimize, "unset values keep defaults")
	assert.Equal(t, Identity{UserID: 3, Name: "Sam"}, cfg.Profile)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"API_PORT": "http"}},
		{"bad level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"bad driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"postgres without host", map[string]string{"DB_DRIVER": "postgres", "DB_NAME": "campwise"}},
		{"bad delay", map[string]string{"TYPING_DELAY": "soon"}},
		{"zero session ttl", map[string]string{"SESSION_TTL": "0s"}},
		{"bad user id", map[string]string{"PROFILE_USER_ID": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CAMPWISE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
