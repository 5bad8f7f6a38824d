package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "local", cfg.ImageStore)
	assert.Equal(t, "wwwroot/images/reviews", cfg.ImageDir)
	assert.Equal(t, 86400, cfg.CookieMaxAge())
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_ProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("COOKIE_SECURE", "true")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("COOKIE_SECURE", "false")
	_, err = FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COOKIE_SECURE")

	t.Setenv("COOKIE_SECURE", "true")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
}

func TestFromEnv_S3NeedsBucket(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("IMAGE_STORE", "s3")
	t.Setenv("S3_BUCKET_NAME", "")

	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("S3_BUCKET_NAME", "dessert-photos")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dessert-photos", cfg.S3Bucket)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	t.Setenv("JWT_TTL", "soon")
	_, err := FromEnv()
	assert.Error(t, err)
	t.Setenv("JWT_TTL", "1h")

	t.Setenv("COOKIE_SAMESITE", "None")
	t.Setenv("COOKIE_SECURE", "false")
	_, err = FromEnv()
	assert.Error(t, err)
	t.Setenv("COOKIE_SAMESITE", "Lax")

	t.Setenv("LOGIN_RATE_LIMIT", "x")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, splitList(" https://a.com, ,https://b.com "))
	assert.Nil(t, splitList(""))
}
