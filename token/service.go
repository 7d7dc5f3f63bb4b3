// Package token issues and verifies the signed, time-limited bearer tokens that carry a user's identity.
// Tokens are stateless: nothing is stored server-side and there is no revocation list.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-job-tracker/internal/config"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/rs/zerolog/log"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims is the claim set carried by a session token. Subject holds the username and
// ID (jti) is reserved for a denylist.
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues and verifies session tokens
type Service struct {
	signer Signer
	ttl    time.Duration
	parser *jwt.Parser
}

// NewService creates a token service. ttl is the default lifetime used by Issue.
func NewService(signer Signer, ttl time.Duration) *Service {
	return &Service{
		signer: signer,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signer.GetSigningMethod().Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithStrictDecoding(),
			jwt.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
		),
	}
}

// NewServiceFromConfig builds an HS256 service from the security settings. An empty secret or any
// algorithm other than HS256 is a configuration error.
func NewServiceFromConfig(cfg config.SecurityConfig) (*Service, error) {
	if cfg.GetJWTSecret() == "" {
		return nil, errors.Wrapf(errors.ErrValidation, "token: signing secret is empty")
	}
	if alg := cfg.GetJWTAlgorithm(); alg != jwt.SigningMethodHS256.Alg() {
		return nil, errors.Wrapf(errors.ErrValidation, "token: unsupported algorithm %q", alg)
	}
	return NewService(NewHMACSigner(cfg.GetJWTSecret()), cfg.GetAccessTokenExpiry()), nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a token for subject that expires after the configured TTL.
func (s *Service) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a token for subject that expires after ttl. A zero ttl yields a token
// that is already expired.
func (s *Service) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := NowTimeFunc()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := s.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrapf(err, "issue token")
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw. Every failure is reported the same way;
// the reason is only logged at debug level.
func (s *Service) Verify(raw string) (*Claims, bool) {
	if raw == "" {
		return nil, false
	}
	claims := &Claims{}
	tok, err := s.parser.ParseWithClaims(raw, claims, s.signer.GetVerificationKey)
	if err != nil || !tok.Valid {
		log.Debug().Err(err).Msg("token rejected")
		return nil, false
	}
	return claims, true
}
