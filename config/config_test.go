package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("EVENTS_MODE", "")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, EventsSync, cfg.Events.Mode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Empty(t, cfg.Admin.Email)
	assert.Equal(t, "host=localhost user=bookstore password='secret' dbname=bookstore port=5432 sslmode=disable", cfg.Database.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("SHUTDOWN_TIMEOUT", "5")
	t.Setenv("EVENTS_MODE", "async")
	t.Setenv("EVENTS_WORKERS", "2")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, 5*time.Second, cfg.Context.ShutdownTimeout)
	assert.Equal(t, EventsAsync, cfg.Events.Mode)
	assert.Equal(t, 2, cfg.Events.Workers)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.URL)
}

func TestLoadRejectsUnknownEventsMode(t *testing.T) {
	t.Setenv("EVENTS_MODE", "kafka")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	t.Setenv("EVENTS_MODE", "")
	t.Setenv("ADMIN_EMAIL", "root@email.com")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD", "secret123")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "root@email.com", cfg.Admin.Email)
}
