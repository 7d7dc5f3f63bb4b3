package users

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore hashes and verifies passwords with bcrypt. The salt is embedded in each digest.
type CredentialStore struct {
	cost int
}

// NewCredentialStore returns a store using cost, clamped to bcrypt's supported range.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &CredentialStore{cost: cost}
}

func (c *CredentialStore) Cost() int {
	return c.cost
}

func (c *CredentialStore) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	return string(bytes), err
}

// Verify returns false for a mismatched password or a malformed digest.
func (c *CredentialStore) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var defaultStore = NewCredentialStore(bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	return defaultStore.Hash(password)
}

func CheckPasswordHash(password, hash string) bool {
	return defaultStore.Verify(password, hash)
}
