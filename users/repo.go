package users

import "context"

// UserRepo persists users. Insert must be atomic and must fail with errors.ErrDuplicateRegistration
// when the username or email is already taken. Lookups return errors.ErrUserNotFound on a miss.
type UserRepo interface {
	Insert(ctx context.Context, username, email, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
