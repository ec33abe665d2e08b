package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "https://localhost:7277", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Empty(t, cfg.ImgBB.Key)
	assert.Empty(t, cfg.Credentials.Path)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "api config override",
			envVars: map[string]string{
				"API_URL":     "https://tradeflow.example.com",
				"API_TIMEOUT": "10s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://tradeflow.example.com", cfg.API.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.API.Timeout)
			},
		},
		{
			name: "imgbb config override",
			envVars: map[string]string{
				"IMGBB_KEY": "key123",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "key123", cfg.ImgBB.Key)
			},
		},
		{
			name: "credentials config override",
			envVars: map[string]string{
				"CREDENTIALS_FILE": "/tmp/creds.json",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/creds.json", cfg.Credentials.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
