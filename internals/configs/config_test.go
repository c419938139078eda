package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "JWT_EXPIRE", "JWT_COOKIE_EXPIRE", "MAX_FILE_UPLOAD", "FILE_UPLOAD_PATH", "KAFKA_BROKERS", "DATABASE_URL", "PUBLIC_BASE_URL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTCookieExpire)
	assert.Equal(t, int64(1000000), cfg.MaxFileUpload)
	assert.Equal(t, "./public/uploads", cfg.FileUploadPath)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_EXPIRE", "2h")
	t.Setenv("JWT_COOKIE_EXPIRE", "7")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTCookieExpire)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseURL)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("X_DUR", "90")
	assert.Equal(t, 90*time.Second, GetEnvDuration("X_DUR", time.Minute))

	t.Setenv("X_DUR", "nonsense")
	assert.Equal(t, time.Minute, GetEnvDuration("X_DUR", time.Minute))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("X_BOOL", "yes")
	assert.True(t, GetEnvBool("X_BOOL", false))

	t.Setenv("X_BOOL", "")
	assert.True(t, GetEnvBool("X_BOOL", true))

	t.Setenv("X_BOOL", "off")
	assert.False(t, GetEnvBool("X_BOOL", true))
}
