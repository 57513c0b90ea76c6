package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/exercise-tracker/internal/dates"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrExerciseFieldsRequired = errors.New("description and duration are required")
	ErrDurationNotNumeric     = errors.New("duration must be a whole number")
	ErrInvalidDate            = errors.New("invalid date")
)

// UserGetter resolves user ids against the directory.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ExerciseWriter defines write operations for exercise entries.
type ExerciseWriter interface {
	Append(ctx context.Context, userID string, entry models.Exercise) error
}

// ExerciseReader defines read operations for exercise entries.
type ExerciseReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Exercise, error)
}

// ExerciseService handles appending exercises and serving filtered logs.
type ExerciseService struct {
	users  UserGetter
	reader ExerciseReader
	writer ExerciseWriter
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(users UserGetter, reader ExerciseReader, writer ExerciseWriter) *ExerciseService {
	return &ExerciseService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// AddExercise validates and appends an exercise entry for the given user.
// The date defaults to today when empty; duration must parse as an integer.
// Nothing is stored when any check fails.
func (svc *ExerciseService) AddExercise(ctx context.Context, userID, description, duration, date string) (*models.User, *models.Exercise, error) {
	description = strings.TrimSpace(description)
	duration = strings.TrimSpace(duration)
	if description == "" || duration == "" {
		logger.Log.Errorw("exercise fields missing", "user_id", userID)
		return nil, nil, ErrExerciseFieldsRequired
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return nil, nil, ErrUserNotFound
	}

	minutes, err := strconv.Atoi(duration)
	if err != nil {
		logger.Log.Errorw("duration is not numeric", "user_id", userID, "duration", duration)
		return nil, nil, ErrDurationNotNumeric
	}

	day := dates.Today()
	if date != "" {
		day, err = dates.Parse(date)
		if err != nil {
			logger.Log.Errorw("invalid exercise date", "user_id", userID, "date", date)
			return nil, nil, ErrInvalidDate
		}
	}

	entry := models.Exercise{
		Description: description,
		Duration:    minutes,
		Date:        dates.Format(day),
	}

	if err := svc.writer.Append(ctx, user.ID, entry); err != nil {
		logger.Log.Errorw("failed to append exercise", "user_id", userID, "err", err)
		return nil, nil, err
	}

	return user, &entry, nil
}

// GetLog returns the user's entries filtered to the inclusive [from, to]
// calendar-date range and truncated to the first limit entries. Bounds or
// limits that do not parse are ignored rather than rejected.
func (svc *ExerciseService) GetLog(ctx context.Context, userID, from, to, limit string) (*models.User, []models.Exercise, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return nil, nil, ErrUserNotFound
	}

	entries, err := svc.reader.ListByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to read exercise log", "user_id", userID, "err", err)
		return nil, nil, err
	}

	if from != "" {
		if bound, err := dates.Parse(from); err == nil {
			entries = filterByDate(entries, func(day time.Time) bool { return !day.Before(bound) })
		}
	}
	if to != "" {
		if bound, err := dates.Parse(to); err == nil {
			entries = filterByDate(entries, func(day time.Time) bool { return !day.After(bound) })
		}
	}

	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n >= 0 && n < len(entries) {
			entries = entries[:n]
		}
	}

	return user, entries, nil
}

// filterByDate keeps entries whose stored date satisfies keep, preserving
// append order. Stored dates are always in the canonical layout.
func filterByDate(entries []models.Exercise, keep func(time.Time) bool) []models.Exercise {
	filtered := make([]models.Exercise, 0, len(entries))
	for _, e := range entries {
		day, err := dates.Parse(e.Date)
		if err != nil {
			continue
		}
		if keep(day) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
