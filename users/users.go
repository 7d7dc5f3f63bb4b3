package users

import (
	"time"
)

// User is an account holder. Users are created at registration and never modified afterwards.
type User struct {
	ID           int64     `json:"id"`         // Unique identifier for the user
	Username     string    `json:"username"`   // Unique username, compared case-sensitively
	Email        string    `json:"email"`      // Unique email address
	PasswordHash string    `json:"-"`          // bcrypt digest - never serialize
	CreatedAt    time.Time `json:"created_at"` // Registration time in UTC
}

// CheckPassword reports whether password matches the user's stored hash.
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}
