// Package auth holds the authentication core: registration and login, identity resolution, and the
// two request perimeters (the path-based Gatekeeper and the per-route Guard).
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/jrsteele09/go-job-tracker/users"
	"github.com/rs/zerolog/log"
)

// maxPasswordBytes is bcrypt's input limit
const maxPasswordBytes = 72

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service registers users and logs them in.
type Service struct {
	users    users.UserRepo
	creds    *users.CredentialStore
	tokens   *token.Service
	validate *validation.Validator

	// verified against when the username is unknown
	dummyHash string
}

func NewService(repo users.UserRepo, creds *users.CredentialStore, tokens *token.Service) *Service {
	dummy, err := creds.Hash("not-a-real-password")
	if err != nil {
		panic(fmt.Sprintf("auth: hashing dummy password: %v", err))
	}
	return &Service{
		users:     repo,
		creds:     creds,
		tokens:    tokens,
		validate:  validation.New(),
		dummyHash: dummy,
	}
}

// Register creates a user. The insert is the only uniqueness check, so of two concurrent
// registrations for the same username or email exactly one succeeds.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", errors.ErrValidation, maxPasswordBytes)
	}

	hash, err := s.creds.Hash(req.Password)
	if err != nil {
		return nil, errors.Wrapf(err, "hash password")
	}

	u, err := s.users.Insert(ctx, req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, errors.ErrDuplicateRegistration) {
			log.Ctx(ctx).Info().Str("username", req.Username).Msg("duplicate registration rejected")
			return nil, errors.ErrDuplicateRegistration
		}
		return nil, errors.Wrapf(err, "register %q", req.Username)
	}
	log.Ctx(ctx).Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	return u, nil
}

// Login checks the credentials and issues a session token. An unknown username and a wrong
// password both return errors.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, *users.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, errors.ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			s.creds.Verify(password, s.dummyHash)
			return "", nil, errors.ErrInvalidCredentials
		}
		return "", nil, errors.Wrapf(err, "login %q", username)
	}
	if !s.creds.Verify(password, u.PasswordHash) {
		return "", nil, errors.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.Username)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// CookieMaxAge is the lifetime in seconds of tokens issued by Login.
func (s *Service) CookieMaxAge() int {
	return int(s.tokens.TTL().Seconds())
}
