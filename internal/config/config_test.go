package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/config"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"ENV", "PORT", "APP_NAME", "DATABASE_URL", "LOG_LEVEL", "ALLOWED_ORIGINS",
	"JWT_SECRET_KEY", "SECRET_KEY", "JWT_ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES",
	"BCRYPT_COST", "COOKIE_SECURE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range allVars {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	c, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8000", c.GetPort())
	require.Equal(t, "development", c.GetEnv())
	require.True(t, c.IsDev())
	require.Equal(t, "info", c.GetLogLevel())
	require.Equal(t, "HS256", c.GetJWTAlgorithm())
	require.Equal(t, 30*time.Minute, c.GetAccessTokenExpiry())
	require.Equal(t, 10, c.GetBcryptCost())
	require.False(t, c.GetCookieSecure())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost"))
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/jobs")

	c, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", c.GetPort())
	require.False(t, c.IsDev())
	require.Equal(t, 45*time.Minute, c.GetAccessTokenExpiry())
	require.Equal(t, 4, c.GetBcryptCost())
	require.True(t, c.GetCookieSecure())
	require.Equal(t, "postgres://u:p@localhost:5432/jobs", c.GetDatabaseURL())
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.GetAllowedOrigins().List())
}

func TestLoadSecretAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "from-alias")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "from-alias", c.GetJWTSecret())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "unsupported algorithm", env: map[string]string{"JWT_SECRET_KEY": "x", "JWT_ALGORITHM": "RS256"}},
		{name: "zero ttl", env: map[string]string{"JWT_SECRET_KEY": "x", "ACCESS_TOKEN_EXPIRE_MINUTES": "0"}},
		{name: "negative ttl", env: map[string]string{"JWT_SECRET_KEY": "x", "ACCESS_TOKEN_EXPIRE_MINUTES": "-5"}},
		{name: "bcrypt cost too high", env: map[string]string{"JWT_SECRET_KEY": "x", "BCRYPT_COST": "99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			require.Error(t, err)
			require.True(t, errors.Is(err, errors.ErrValidation))
		})
	}
}

func TestNew(t *testing.T) {
	c, err := config.New(
		config.EnvVars{Port: "8080", Env: "test"},
		config.Cors{Origins: "http://localhost"},
		config.Security{JWTSecretKey: "k", AccessTokenExpireMinutes: 5},
	)
	require.NoError(t, err)
	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, 5*time.Minute, c.GetAccessTokenExpiry())

	_, err = config.New(config.EnvVars{Port: "8080"}, config.Cors{}, config.Security{AccessTokenExpireMinutes: 5})
	require.Error(t, err)
}
