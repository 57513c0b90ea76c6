package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserStore is the shared in-memory user storage behind the read and write
// repositories. It plays the role of a database handle: construct one in main
// and pass it to both repositories. State lives for the process lifetime.
type UserStore struct {
	mu    sync.RWMutex
	order []models.User
	byID  map[string]models.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]models.User)}
}

type UserWriteRepository struct {
	store *UserStore
}

func NewUserWriteRepository(store *UserStore) *UserWriteRepository {
	return &UserWriteRepository{store: store}
}

// Save stores a new user. Ids are assigned by the caller and never reused,
// so an existing entry is never overwritten.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.order = append(r.store.order, user)
	r.store.byID[user.ID] = user

	logger.Log.Infow("saved user", "user_id", user.ID, "username", user.Username)
	return nil
}

type UserReadRepository struct {
	store *UserStore
}

func NewUserReadRepository(store *UserStore) *UserReadRepository {
	return &UserReadRepository{store: store}
}

// GetByID returns the user with the given id, or nil if it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.byID[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// List returns all users in insertion order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, len(r.store.order))
	copy(users, r.store.order)
	return users, nil
}
