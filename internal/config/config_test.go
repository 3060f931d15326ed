package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "booking"
password = "booking"
dbname = "hsp_bookings"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"

[notify_service]
url = "http://localhost:8083"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
	// Отказ после принятия разрешён по умолчанию
	assert.True(t, cfg.Lifecycle.AllowRejectAfterAccept)
	assert.Equal(t, 256, cfg.NotifyService.QueueSize)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=booking dbname=hsp_bookings sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[lifecycle]
allow_reject_after_accept = false
`))
	require.NoError(t, err)

	assert.False(t, cfg.Lifecycle.AllowRejectAfterAccept)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"missing database host", `
[database]
user = "booking"
dbname = "hsp_bookings"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"

[notify_service]
url = "http://localhost:8083"
`},
		{"missing notify url", `
[database]
host = "localhost"
user = "booking"
dbname = "hsp_bookings"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"
`},
		{"metrics enabled without service name", minimalConfig + `
[metrics]
enabled = true
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
