// Package config loads the tracker's process-wide settings from the environment and an optional .env
// file. Settings are read once at startup and are immutable afterwards.
package config

import (
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/spf13/viper"
)

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDatabaseURL() string
	GetLogLevel() string
	IsDev() bool
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() []string
	GetAllowedHeaders() []string
}

type SecurityConfig interface {
	GetJWTSecret() string
	GetJWTAlgorithm() string
	GetAccessTokenExpiry() time.Duration
	GetBcryptCost() int
	GetCookieSecure() bool
}

type mainConfig struct {
	EnvVars  `mapstructure:",squash"`
	Cors     `mapstructure:",squash"`
	Security `mapstructure:",squash"`
}

var _ Config = mainConfig{}

// New assembles a Config from explicit values and validates it.
func New(env EnvVars, cors Cors, security Security) (Config, error) {
	c := mainConfig{EnvVars: env, Cors: cors, Security: security}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads .env (if present) and the environment. Environment variables override .env values.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()

	v.SetDefault(envVar, "development")
	v.SetDefault(portEnvVar, "8000")
	v.SetDefault(appNameVar, "Job Tracker")
	v.SetDefault(databaseURLVar, "")
	v.SetDefault(logLevelVar, "info")
	v.SetDefault(allowedOriginsVar, "http://localhost")
	v.SetDefault(jwtSecretVar, "")
	v.SetDefault(secretKeyAliasVar, "")
	v.SetDefault(jwtAlgorithmVar, AlgorithmHS256)
	v.SetDefault(tokenExpiryVar, 30)
	v.SetDefault(bcryptCostVar, 0)
	v.SetDefault(cookieSecureVar, false)

	var c mainConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrapf(err, "config: unmarshal")
	}
	if c.JWTSecretKey == "" {
		c.JWTSecretKey = v.GetString(secretKeyAliasVar)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *mainConfig) validate() error {
	if err := c.EnvVars.validate(); err != nil {
		return err
	}
	return c.Security.validate()
}
