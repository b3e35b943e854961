package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// UserRepo is an in-memory UserRepository. Email lookup is
// case-insensitive.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepo returns an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
