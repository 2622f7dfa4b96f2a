package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logger:
  level: debug
  json_format: true
http_client:
  retry_count: 2
  timeout: 15s
  tls_client_config:
    verify: false
  proxy:
    host: proxy.local
    port: 3128
validator:
  schema_path: schemas/custom.json
  data_dir: ./data
  skip_file_checks: true
  output_format: sarif
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, GetBoolValue(cfg, "Logger.JSONFormat", false))
	assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true))
	assert.Equal(t, 2, cfg.HTTPClient.RetryCount)
	assert.Equal(t, 15*time.Second, cfg.HTTPClient.Timeout)
	assert.False(t, GetBoolValue(cfg, "HTTPClient.TLSClientConfig.Verify", true))
	assert.Equal(t, 3128, cfg.HTTPClient.Proxy.Port)
	assert.Equal(t, "schemas/custom.json", cfg.Validator.SchemaPath)
	assert.Equal(t, "./data", cfg.Validator.DataDir)
	assert.True(t, GetBoolValue(cfg, "Validator.SkipFileChecks", false))
	assert.False(t, GetBoolValue(cfg, "Validator.FailOnWarnings", false))
	assert.Equal(t, OutputSARIF, OutputFormat(cfg))

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, "http://proxy.local", cfg.HTTPClient.Proxy.Host)
}

func TestNewConfigEmptyFile(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, OutputLog, OutputFormat(cfg))
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = LoadConfig(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	_, err = LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "nil", cfg: nil, wantErr: true},
		{name: "empty", cfg: &Config{}},
		{name: "bad level", cfg: &Config{Logger: Logger{Level: "loud"}}, wantErr: true},
		{name: "retry count", cfg: &Config{HTTPClient: HTTPClient{RetryCount: 21}}, wantErr: true},
		{name: "negative timeout", cfg: &Config{HTTPClient: HTTPClient{Timeout: -time.Second}}, wantErr: true},
		{name: "long wait", cfg: &Config{HTTPClient: HTTPClient{RetryWaitTime: 2 * time.Minute}}, wantErr: true},
		{name: "bad port", cfg: &Config{HTTPClient: HTTPClient{Proxy: Proxy{Host: "p", Port: 70000}}}, wantErr: true},
		{name: "bad format", cfg: &Config{Validator: Validator{OutputFormat: "xml"}}, wantErr: true},
		{name: "json format", cfg: &Config{Validator: Validator{OutputFormat: OutputJSON}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, 3, SetThen(0, 3))
	assert.Equal(t, 5, SetThen(5, 3))
	assert.Equal(t, "json", SetThen("", "json"))
	assert.Equal(t, time.Second, SetThen(time.Duration(0), time.Second))
}

func TestGetBoolValue(t *testing.T) {
	yes := true
	cfg := &Config{Validator: Validator{FailOnWarnings: &yes}}

	assert.True(t, GetBoolValue(cfg, "Validator.FailOnWarnings", false))
	assert.True(t, GetBoolValue(cfg, "Validator.SkipFileChecks", true))
	assert.False(t, GetBoolValue(cfg, "Validator.Missing", false))
	assert.False(t, GetBoolValue(cfg, "Validator.OutputFormat", false))
	assert.True(t, GetBoolValue(nil, "Logger.JSONFormat", true))
	assert.True(t, GetBoolValue((*Config)(nil), "Logger.JSONFormat", true))
}
