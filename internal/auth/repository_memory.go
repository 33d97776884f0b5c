package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserRepository backs the handler tests.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
