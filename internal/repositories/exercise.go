package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// ExerciseStore holds, per user id, the ordered sequence of exercise entries.
// Like UserStore it is shared by the read and write repositories.
type ExerciseStore struct {
	mu       sync.RWMutex
	byUserID map[string][]models.Exercise
}

// NewExerciseStore creates an empty exercise store.
func NewExerciseStore() *ExerciseStore {
	return &ExerciseStore{byUserID: make(map[string][]models.Exercise)}
}

type ExerciseWriteRepository struct {
	store *ExerciseStore
}

func NewExerciseWriteRepository(store *ExerciseStore) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{store: store}
}

// Append adds an entry to the end of the user's sequence. The sequence is
// created on first use.
func (r *ExerciseWriteRepository) Append(ctx context.Context, userID string, entry models.Exercise) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.byUserID[userID] = append(r.store.byUserID[userID], entry)

	logger.Log.Infow("appended exercise",
		"user_id", userID,
		"description", entry.Description,
		"duration", entry.Duration,
		"date", entry.Date,
	)
	return nil
}

type ExerciseReadRepository struct {
	store *ExerciseStore
}

func NewExerciseReadRepository(store *ExerciseStore) *ExerciseReadRepository {
	return &ExerciseReadRepository{store: store}
}

// ListByUserID returns the user's entries in append order. Users with no
// recorded exercises get an empty sequence.
func (r *ExerciseReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := r.store.byUserID[userID]
	entries := make([]models.Exercise, len(stored))
	copy(entries, stored)
	return entries, nil
}
