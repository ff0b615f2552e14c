package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, key := range []string{
		"PORT", "BACKEND_URL", "BACKEND_TIMEOUT", "LOG_LEVEL", "PLAYGROUND_ENABLED",
		"CORS_ALLOWED_ORIGINS", "REDIS_HOST", "CACHE_TTL", "KAFKA_BROKER", "KAFKA_TOPIC", "QR_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "https://server-nuerpay.herokuapp.com", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.PlaygroundEnabled)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.EventsEnabled())
	assert.False(t, cfg.QREnabled)
	assert.Equal(t, "gateway-events", cfg.KafkaTopic)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_URL", "http://backend:3000/")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("PLAYGROUND_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("QR_ENABLED", "1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://backend:3000", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.True(t, cfg.PlaygroundEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.EventsEnabled())
	assert.True(t, cfg.QREnabled)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BACKEND_TIMEOUT", "soon")
	t.Setenv("CACHE_TTL", "-1s")
	t.Setenv("QR_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.QREnabled)
}

func chdirTemp(t *testing.T, envFile string) {
	dir := t.TempDir()
	if envFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o600))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoad_EnvFile(t *testing.T) {
	tests := []struct {
		name     string
		envFile  string
		wantErr  bool
		wantPort string
	}{
		{name: "missing file is ignored", wantPort: "4000"},
		{name: "values are loaded", envFile: "PORT=7070\n", wantPort: "7070"},
		{name: "malformed file is reported", envFile: "BAD-KEY=1\n", wantErr: true, wantPort: "4000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "development")
			t.Setenv("PORT", "")
			os.Unsetenv("PORT")
			chdirTemp(t, testCase.envFile)

			cfg := Load()

			if testCase.wantErr {
				assert.Error(t, cfg.EnvFileErr)
			} else {
				assert.NoError(t, cfg.EnvFileErr)
			}
			assert.Equal(t, testCase.wantPort, cfg.Port)
		})
	}
}

func TestLoad_ProductionSkipsEnvFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	chdirTemp(t, "BAD-KEY=1\n")

	cfg := Load()

	assert.NoError(t, cfg.EnvFileErr)
	assert.Equal(t, "4000", cfg.Port)
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(Config{KafkaBroker: "kafka:9092", KafkaTopic: "events"})

	assert.Equal(t, "events", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}
