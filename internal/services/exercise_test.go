package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/exercise-tracker/internal/dates"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

func TestExerciseService_AddExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: "id-1", Username: "alice"}

	tests := []struct {
		name        string
		userID      string
		description string
		duration    string
		date        string
		user        *models.User
		wantErr     error
		wantEntry   *models.Exercise
	}{
		{
			name:        "success with explicit date",
			userID:      "id-1",
			description: "swim",
			duration:    "20",
			date:        "2023-05-05",
			user:        alice,
			wantEntry:   &models.Exercise{Description: "swim", Duration: 20, Date: "Fri May 05 2023"},
		},
		{
			name:        "missing description",
			userID:      "id-1",
			description: "",
			duration:    "20",
			wantErr:     services.ErrExerciseFieldsRequired,
		},
		{
			name:        "missing duration",
			userID:      "id-1",
			description: "swim",
			duration:    "",
			wantErr:     services.ErrExerciseFieldsRequired,
		},
		{
			name:        "unknown user",
			userID:      "no-such-id",
			description: "swim",
			duration:    "20",
			user:        nil,
			wantErr:     services.ErrUserNotFound,
		},
		{
			name:        "non-numeric duration",
			userID:      "id-1",
			description: "swim",
			duration:    "twenty",
			user:        alice,
			wantErr:     services.ErrDurationNotNumeric,
		},
		{
			name:        "unparsable date",
			userID:      "id-1",
			description: "swim",
			duration:    "20",
			date:        "yesterday",
			user:        alice,
			wantErr:     services.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserGetter(ctrl)
			mockReader := services.NewMockExerciseReader(ctrl)
			mockWriter := services.NewMockExerciseWriter(ctrl)
			svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

			// Field validation happens before the directory lookup.
			if tt.wantErr != services.ErrExerciseFieldsRequired {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), tt.userID).
					Return(tt.user, nil)
			}
			if tt.wantEntry != nil {
				mockWriter.EXPECT().
					Append(gomock.Any(), tt.user.ID, *tt.wantEntry).
					Return(nil)
			}

			user, entry, err := svc.AddExercise(context.Background(), tt.userID, tt.description, tt.duration, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.user, user)
			assert.Equal(t, tt.wantEntry, entry)
		})
	}
}

func TestExerciseService_AddExercise_DefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: "id-1", Username: "alice"}

	mockUsers := services.NewMockUserGetter(ctrl)
	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

	mockUsers.EXPECT().GetByID(gomock.Any(), "id-1").Return(alice, nil)
	mockWriter.EXPECT().Append(gomock.Any(), "id-1", gomock.Any()).Return(nil)

	_, entry, err := svc.AddExercise(context.Background(), "id-1", "run", "30", "")
	assert.NoError(t, err)
	assert.Equal(t, dates.Format(dates.Today()), entry.Date)
	assert.Equal(t, 30, entry.Duration)
}

func TestExerciseService_GetLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: "id-1", Username: "alice"}
	stored := []models.Exercise{
		{Description: "swim", Duration: 20, Date: "Fri May 05 2023"},
		{Description: "bike", Duration: 45, Date: "Thu Jun 01 2023"},
		{Description: "run", Duration: 30, Date: "Sat Jul 01 2023"},
	}

	tests := []struct {
		name     string
		from     string
		to       string
		limit    string
		wantDesc []string
	}{
		{
			name:     "no filters returns everything in order",
			wantDesc: []string{"swim", "bike", "run"},
		},
		{
			name:     "from bound is inclusive",
			from:     "2023-06-01",
			wantDesc: []string{"bike", "run"},
		},
		{
			name:     "to bound is inclusive",
			to:       "2023-06-01",
			wantDesc: []string{"swim", "bike"},
		},
		{
			name:     "range keeps only may",
			from:     "2023-05-01",
			to:       "2023-05-31",
			wantDesc: []string{"swim"},
		},
		{
			name:     "limit takes the first entries",
			limit:    "2",
			wantDesc: []string{"swim", "bike"},
		},
		{
			name:     "limit after filtering",
			from:     "2023-06-01",
			limit:    "1",
			wantDesc: []string{"bike"},
		},
		{
			name:     "limit larger than log",
			limit:    "10",
			wantDesc: []string{"swim", "bike", "run"},
		},
		{
			name:     "unparsable from is ignored",
			from:     "not-a-date",
			wantDesc: []string{"swim", "bike", "run"},
		},
		{
			name:     "unparsable limit is ignored",
			limit:    "many",
			wantDesc: []string{"swim", "bike", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserGetter(ctrl)
			mockReader := services.NewMockExerciseReader(ctrl)
			mockWriter := services.NewMockExerciseWriter(ctrl)
			svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

			mockUsers.EXPECT().GetByID(gomock.Any(), "id-1").Return(alice, nil)
			mockReader.EXPECT().ListByUserID(gomock.Any(), "id-1").Return(stored, nil)

			user, entries, err := svc.GetLog(context.Background(), "id-1", tt.from, tt.to, tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, alice, user)

			descs := make([]string, 0, len(entries))
			for _, e := range entries {
				descs = append(descs, e.Description)
			}
			assert.Equal(t, tt.wantDesc, descs)
		})
	}
}

func TestExerciseService_GetLog_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserGetter(ctrl)
	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

	mockUsers.EXPECT().GetByID(gomock.Any(), "no-such-id").Return(nil, nil)

	user, entries, err := svc.GetLog(context.Background(), "no-such-id", "", "", "")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Nil(t, user)
	assert.Nil(t, entries)
}

func TestExerciseService_GetLog_EmptyLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: "id-1", Username: "alice"}

	mockUsers := services.NewMockUserGetter(ctrl)
	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

	mockUsers.EXPECT().GetByID(gomock.Any(), "id-1").Return(alice, nil)
	mockReader.EXPECT().ListByUserID(gomock.Any(), "id-1").Return([]models.Exercise{}, nil)

	_, entries, err := svc.GetLog(context.Background(), "id-1", "", "", "")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExerciseService_GetLog_ResponseDatesRoundTripAsBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: "id-1", Username: "alice"}
	day := time.Date(2023, time.May, 5, 0, 0, 0, 0, time.UTC)
	stored := []models.Exercise{
		{Description: "swim", Duration: 20, Date: dates.Format(day)},
	}

	mockUsers := services.NewMockUserGetter(ctrl)
	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	svc := services.NewExerciseService(mockUsers, mockReader, mockWriter)

	mockUsers.EXPECT().GetByID(gomock.Any(), "id-1").Return(alice, nil)
	mockReader.EXPECT().ListByUserID(gomock.Any(), "id-1").Return(stored, nil)

	// A canonical response date used as a filter bound matches itself.
	_, entries, err := svc.GetLog(context.Background(), "id-1", dates.Format(day), dates.Format(day), "")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
