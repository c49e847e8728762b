package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"version":        "0.9.0",
			"log_level":      "error",
			"token_sign_key": "sign",
			"token_issuer":   "iss",
		},
		"server": map[string]any{
			"http_address":    ":9090",
			"request_timeout": "4m",
		},
		"adapter": map[string]any{
			"api_key":         "json-key",
			"region":          "in",
			"profile":         "json-profile",
			"request_timeout": "20s",
		},
		"scan": map[string]any{
			"max_retries":          2,
			"polling_interval":     "250ms",
			"max_polling_duration": "45s",
			"app_name":             "json-app",
			"ai_model":             "llama",
			"app_user":             "bob",
			"continue_on_fail":     true,
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 4*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "json-key", cfg.Adapter.APIKey)
	assert.Equal(t, "in", cfg.Adapter.Region)
	assert.Equal(t, "json-profile", cfg.Adapter.Profile)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Scan.MaxRetries)
	assert.Equal(t, 2, *cfg.Scan.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Scan.PollingInterval)
	assert.Equal(t, 45*time.Second, cfg.Scan.MaxPollingDuration)
	assert.Equal(t, "json-app", cfg.Scan.AppName)
	assert.True(t, cfg.Scan.ContinueOnFail)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(b))
}
