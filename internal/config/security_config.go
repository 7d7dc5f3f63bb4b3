package config

import (
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecretVar      = "JWT_SECRET_KEY"
	secretKeyAliasVar = "SECRET_KEY"
	jwtAlgorithmVar   = "JWT_ALGORITHM"
	tokenExpiryVar    = "ACCESS_TOKEN_EXPIRE_MINUTES"
	bcryptCostVar     = "BCRYPT_COST"
	cookieSecureVar   = "COOKIE_SECURE"

	// AlgorithmHS256 is the only supported token signing algorithm
	AlgorithmHS256 = "HS256"

	defaultBcryptCost = bcrypt.DefaultCost
)

type Security struct {
	JWTSecretKey             string `mapstructure:"JWT_SECRET_KEY"`
	JWTAlgorithm             string `mapstructure:"JWT_ALGORITHM"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	BcryptCost               int    `mapstructure:"BCRYPT_COST"`
	CookieSecure             bool   `mapstructure:"COOKIE_SECURE"`
}

var _ SecurityConfig = Security{}

func (s Security) GetJWTSecret() string {
	return s.JWTSecretKey
}

func (s Security) GetJWTAlgorithm() string {
	if s.JWTAlgorithm == "" {
		return AlgorithmHS256
	}
	return s.JWTAlgorithm
}

func (s Security) GetAccessTokenExpiry() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}

func (s Security) GetBcryptCost() int {
	if s.BcryptCost == 0 {
		return defaultBcryptCost
	}
	return s.BcryptCost
}

func (s Security) GetCookieSecure() bool {
	return s.CookieSecure
}

func (s Security) validate() error {
	if s.JWTSecretKey == "" {
		return errors.Wrapf(errors.ErrValidation, "config: %s must be set", jwtSecretVar)
	}
	if s.GetJWTAlgorithm() != AlgorithmHS256 {
		return errors.Wrapf(errors.ErrValidation, "config: %s must be %s, got %q", jwtAlgorithmVar, AlgorithmHS256, s.JWTAlgorithm)
	}
	if s.AccessTokenExpireMinutes <= 0 {
		return errors.Wrapf(errors.ErrValidation, "config: %s must be positive", tokenExpiryVar)
	}
	if cost := s.GetBcryptCost(); cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return errors.Wrapf(errors.ErrValidation, "config: %s must be between %d and %d", bcryptCostVar, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
