package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.Equal(t, EnginePostgres, cfg.DB.GormEngine)
	assert.NotEmpty(t, cfg.DB.Host)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, "access.log", cfg.Log.File.AccessLog)
}

func TestReadConfigWithEnvBindings(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://earg:secret@db:5432/earg")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("PORT", "8088")

	cfg, err := ReadConfig(testConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "postgres://earg:secret@db:5432/earg", cfg.DB.URL)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 8088, cfg.Webserver.Port)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","Webserver":{"Port":9090}}`)

	cfg, err := ReadConfig(testConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Webserver: Webserver{Port: 8080}},
		},
		{
			name:    "missing port",
			config:  Config{Webserver: Webserver{Port: 0}},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "unknown engine",
			config: Config{
				Webserver: Webserver{Port: 8080},
				DB:        DB{GormEngine: "oracle"},
			},
			wantErr: ErrUnknownGormEngine,
		},
		{
			name: "admin enabled without password",
			config: Config{
				Webserver: Webserver{Port: 8080},
				Admin:     Admin{Enabled: true},
			},
			wantErr: ErrAdminPasswordEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080}}
	require.NoError(t, validate(&cfg))

	assert.Equal(t, EnginePostgres, cfg.DB.GormEngine)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title: "Test",
		Webserver: Webserver{
			Port: 8080,
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Title": "Test"`)
}
