package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/crisvega/userhub/internal/domain/user"
)

// UsersRepo keeps users in process memory. Used by tests and by the server
// when no database is configured.
type UsersRepo struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		nextID: 1,
		items:  make(map[int]user.User),
	}
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]user.User, 0, len(r.items))

	for _, u := range r.items {
		output = append(output, u)
	}

	sort.Slice(output, func(i, j int) bool {
		return output[i].ID < output[j].ID
	})

	return output, nil
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++

	u.ConfirmPassword = ""
	u.CreatedAt = now
	u.UpdatedAt = now

	r.items[u.ID] = u

	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[u.ID]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	u.ConfirmPassword = ""
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()

	r.items[u.ID] = u

	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	delete(r.items, id)

	return deleted, nil
}
