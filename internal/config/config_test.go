package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.NotZero(t, cfg.Webserver.ShutDownTime)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.Equal(t, "access.log", cfg.Log.File.AccessLog)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	assert.Error(t, err)
}

func TestReadConfig_DefaultShutDownTime(t *testing.T) {
	dir := t.TempDir() + string(filepath.Separator)
	content := "Title = \"t\"\n[Webserver]\nPort = 8080\nURL = \"http://localhost:8080\"\n"

	require.NoError(t, os.WriteFile(dir+"main.toml", []byte(content), 0o600))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultShutDownTime, cfg.Webserver.ShutDownTime)
}

func TestReadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir() + string(filepath.Separator)
	content := "Title = \"t\"\n[Webserver]\nPort = 8080\nURL = \"http://localhost:8080\"\n"

	require.NoError(t, os.WriteFile(dir+"main.toml", []byte(content), 0o600))
	require.NoError(t, os.WriteFile(dir+".env", []byte(EnvConfigJSON+`='{"Title":"From Env"}'`+"\n"), 0o600))

	// godotenv never overrides a variable that is already set
	t.Setenv(EnvConfigJSON, "")
	require.NoError(t, os.Unsetenv(EnvConfigJSON))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Title)
}

func TestReadConfig_BrokenDotEnv(t *testing.T) {
	dir := t.TempDir() + string(filepath.Separator)
	content := "Title = \"t\"\n[Webserver]\nPort = 8080\nURL = \"http://localhost:8080\"\n"

	require.NoError(t, os.WriteFile(dir+"main.toml", []byte(content), 0o600))
	require.NoError(t, os.WriteFile(dir+".env", []byte("BROKEN=\"unterminated\n"), 0o600))

	_, err := ReadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrInvalidPort,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr, errors.Cause(err))
		})
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL, "fields not in the override are kept")
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	assert.Error(t, err)
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

	assert.NotEmpty(t, tomlStr)
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)

	assert.Contains(t, jsonStr, `"Title": "Test"`)
	assert.Contains(t, jsonStr, `"Port": 8080`)
}
