package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "data/eventify.db", cfg.Store.Path)
	assert.Equal(t, time.Duration(0), cfg.Store.CacheTTL)
	assert.False(t, cfg.Render.EscapeHTML)
	assert.Equal(t, "en", cfg.Render.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EVENTIFY_SERVER_PORT", "9090")
	t.Setenv("EVENTIFY_STORE_DRIVER", "memory")
	t.Setenv("EVENTIFY_STORE_CACHE_TTL", "5s")
	t.Setenv("EVENTIFY_RENDER_ESCAPE_HTML", "true")
	t.Setenv("EVENTIFY_LOGGING_FORMAT", "console")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 5*time.Second, cfg.Store.CacheTTL)
	assert.True(t, cfg.Render.EscapeHTML)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventify.yaml")
	content := "server:\n  port: 7070\nrender:\n  locale: fr\n  timezone: Europe/Paris\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "fr", cfg.Render.Locale)
	assert.Equal(t, "Europe/Paris", cfg.Render.Timezone)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"EVENTIFY_STORE_DRIVER": "redis"}},
		{"postgres without url", map[string]string{"EVENTIFY_STORE_DRIVER": "postgres"}},
		{"postgres url without host", map[string]string{
			"EVENTIFY_STORE_DRIVER":       "postgres",
			"EVENTIFY_STORE_DATABASE_URL": "eventify",
		}},
		{"port out of range", map[string]string{"EVENTIFY_SERVER_PORT": "70000"}},
		{"short csrf key", map[string]string{"EVENTIFY_CSRF_KEY": "too-short"}},
		{"bad log level", map[string]string{"EVENTIFY_LOGGING_LEVEL": "chatty"}},
		{"unbundled locale", map[string]string{"EVENTIFY_RENDER_LOCALE": "de"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("EVENTIFY_STORE_DRIVER", "postgres")
	t.Setenv("EVENTIFY_STORE_DATABASE_URL", "postgres://localhost:5432/eventify?sslmode=disable")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Driver)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
