package errors

import (
	"errors"
	"fmt"
)

// Common error types for the job tracker
var (
	// Authentication errors
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrDuplicateRegistration = errors.New("username or email already registered")
	ErrUnauthenticated       = errors.New("could not validate credentials")
	ErrUserNotFound          = errors.New("user not found")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// General errors
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors
func Join(errs ...error) error {
	return errors.Join(errs...)
}
