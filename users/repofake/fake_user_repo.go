package fakeuserrepo

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory UserRepo. Uniqueness is checked and the row inserted under one lock,
// which gives it the same atomicity as the database constraints.
type FakeUserRepo struct {
	users      map[int64]*users.User
	byUsername map[string]int64
	byEmail    map[string]int64
	nextID     int64
	lock       sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:      make(map[int64]*users.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
	}
}

func (ur *FakeUserRepo) Insert(_ context.Context, username, email, passwordHash string) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.byUsername[username]; ok {
		return nil, errors.Wrapf(errors.ErrDuplicateRegistration, "constraint users_username_key")
	}
	if _, ok := ur.byEmail[email]; ok {
		return nil, errors.Wrapf(errors.ErrDuplicateRegistration, "constraint users_email_key")
	}

	ur.nextID++
	u := &users.User{
		ID:           ur.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	ur.users[u.ID] = u
	ur.byUsername[username] = u.ID
	ur.byEmail[email] = u.ID
	return copyUser(u), nil
}

func (ur *FakeUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.byUsername[username]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return copyUser(ur.users[id]), nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id int64) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return copyUser(u), nil
}

// Count returns the number of stored users.
func (ur *FakeUserRepo) Count() int {
	ur.lock.RLock()
	defer ur.lock.RUnlock()
	return len(ur.users)
}

func copyUser(u *users.User) *users.User {
	c := *u
	return &c
}
