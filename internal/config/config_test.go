package config

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "aes-gcm", cfg.CookieCipher)
				assert.True(t, cfg.CookieSecure)
				assert.Equal(t, 10*time.Minute, cfg.OTPExpiration)
				assert.Equal(t, 10*time.Second, cfg.SpotifyTimeout)
				assert.True(t, cfg.RateLimitResetEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "setlistify", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
				"BASE_URL":    "https://setlistify.example.com",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, "https://setlistify.example.com", cfg.BaseURL)
			},
		},
		{
			name: "load custom cookie configuration",
			envVars: map[string]string{
				"COOKIE_CIPHER": "chacha20-poly1305",
				"COOKIE_SECURE": "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "chacha20-poly1305", cfg.CookieCipher)
				assert.False(t, cfg.CookieSecure)
			},
		},
		{
			name: "load custom otp window",
			envVars: map[string]string{
				"OTP_EXPIRATION_MINUTES": "5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5*time.Minute, cfg.OTPExpiration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := Load()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestCookieKey(t *testing.T) {
	t.Run("valid 32-byte key", func(t *testing.T) {
		raw := make([]byte, 32)
		for i := range raw {
			raw[i] = byte(i)
		}
		cfg := &Config{CookieEncryptionKey: hex.EncodeToString(raw)}

		key, err := cfg.CookieKey()
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.CookieKey()
		require.Error(t, err)
	})

	t.Run("wrong size", func(t *testing.T) {
		cfg := &Config{CookieEncryptionKey: hex.EncodeToString(make([]byte, 16))}
		_, err := cfg.CookieKey()
		require.ErrorIs(t, err, errInvalidCookieKeySize)
	})

	t.Run("not hex", func(t *testing.T) {
		cfg := &Config{CookieEncryptionKey: "not-hex"}
		_, err := cfg.CookieKey()
		require.Error(t, err)
	})
}

func TestRedirectURI(t *testing.T) {
	cfg := &Config{BaseURL: "https://setlistify.example.com"}
	assert.Equal(t, "https://setlistify.example.com/callback", cfg.RedirectURI())
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.logLevel}
		assert.Equal(t, tt.expected, cfg.GetGinMode())
	}
}
