package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

func TestUserRepository_SaveAndGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	writer := NewUserWriteRepository(store)
	reader := NewUserReadRepository(store)

	user := models.User{ID: "id-1", Username: "alice"}
	assert.NoError(t, writer.Save(ctx, user))

	got, err := reader.GetByID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, &user, got)
}

func TestUserReadRepository_GetByID_Missing(t *testing.T) {
	ctx := context.Background()
	reader := NewUserReadRepository(NewUserStore())

	got, err := reader.GetByID(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserReadRepository_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	writer := NewUserWriteRepository(store)
	reader := NewUserReadRepository(store)

	users := []models.User{
		{ID: "id-1", Username: "alice"},
		{ID: "id-2", Username: "bob"},
		{ID: "id-3", Username: "alice"}, // duplicate usernames allowed
	}
	for _, u := range users {
		assert.NoError(t, writer.Save(ctx, u))
	}

	got, err := reader.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserReadRepository_List_Empty(t *testing.T) {
	ctx := context.Background()
	reader := NewUserReadRepository(NewUserStore())

	got, err := reader.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
