package logger

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/isaval/internal/config"
)

func TestDetermineLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")

	assert.Equal(t, hclog.Info, determineLogLevel(nil))
	assert.Equal(t, hclog.Debug, determineLogLevel(&config.Config{Logger: config.Logger{Level: "debug"}}))

	t.Setenv(LogLevelEnv, "error")
	assert.Equal(t, hclog.Error, determineLogLevel(&config.Config{Logger: config.Logger{Level: "debug"}}))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]hclog.Level{
		"TRACE":   hclog.Trace,
		"DEBUG":   hclog.Debug,
		"INFO":    hclog.Info,
		"WARN":    hclog.Warn,
		"ERROR":   hclog.Error,
		"VERBOSE": hclog.Info,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestNewLoggerWithOutput(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	jsonFormat := true
	cfg := &config.Config{Logger: config.Logger{Level: "warn", JSONFormat: &jsonFormat}}

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, "isaval", &buf)
	log.Info("hidden")
	log.Warn("shown", "file", "a.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"@message":"shown"`)
	assert.Contains(t, out, `"@module":"isaval"`)
	assert.Contains(t, out, `"file":"a.json"`)
}
