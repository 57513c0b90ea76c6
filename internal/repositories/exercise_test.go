package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

func TestExerciseRepository_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewExerciseStore()
	writer := NewExerciseWriteRepository(store)
	reader := NewExerciseReadRepository(store)

	entries := []models.Exercise{
		{Description: "swim", Duration: 20, Date: "Fri May 05 2023"},
		{Description: "bike", Duration: 45, Date: "Thu Jun 01 2023"},
		{Description: "run", Duration: 30, Date: "Thu Jun 01 2023"},
	}
	for _, e := range entries {
		assert.NoError(t, writer.Append(ctx, "id-1", e))
	}

	got, err := reader.ListByUserID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestExerciseReadRepository_ListByUserID_Empty(t *testing.T) {
	ctx := context.Background()
	reader := NewExerciseReadRepository(NewExerciseStore())

	got, err := reader.ListByUserID(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExerciseRepository_SequencesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewExerciseStore()
	writer := NewExerciseWriteRepository(store)
	reader := NewExerciseReadRepository(store)

	assert.NoError(t, writer.Append(ctx, "id-1", models.Exercise{Description: "run", Duration: 30, Date: "Fri May 05 2023"}))
	assert.NoError(t, writer.Append(ctx, "id-2", models.Exercise{Description: "swim", Duration: 20, Date: "Fri May 05 2023"}))

	first, err := reader.ListByUserID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, "run", first[0].Description)

	second, err := reader.ListByUserID(ctx, "id-2")
	assert.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, "swim", second[0].Description)
}

func TestExerciseReadRepository_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewExerciseStore()
	writer := NewExerciseWriteRepository(store)
	reader := NewExerciseReadRepository(store)

	assert.NoError(t, writer.Append(ctx, "id-1", models.Exercise{Description: "run", Duration: 30, Date: "Fri May 05 2023"}))

	got, _ := reader.ListByUserID(ctx, "id-1")
	got[0].Description = "mutated"

	again, _ := reader.ListByUserID(ctx, "id-1")
	assert.Equal(t, "run", again[0].Description)
}
