package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
	"github.com/sbilibin2017/exercise-tracker/pkg/validation"
)

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	AddExercise(ctx context.Context, userID, description, duration, date string) (*models.User, *models.Exercise, error)
}

// AddExerciseRequest represents the form body for appending an exercise
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Exercise description
	// required: true
	// example: run
	Description string `json:"description" validate:"required"`

	// Duration in whole minutes
	// required: true
	// example: 30
	Duration string `json:"duration" validate:"required"`

	// Calendar date, e.g. 2023-05-05; defaults to today
	// example: 2023-05-05
	Date string `json:"date" validate:"omitempty"`
}

// AddExerciseResponse represents the stored entry enriched with its owner
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// Owner display name
	// example: alice
	Username string `json:"username"`

	// Owner id
	// example: 3c0b44f5-6a61-4f39-9c3b-19c6a7f1f6b2
	ID string `json:"_id"`

	// Exercise description
	// example: run
	Description string `json:"description"`

	// Duration in whole minutes
	// example: 30
	Duration int `json:"duration"`

	// Canonical date string
	// example: Fri May 05 2023
	Date string `json:"date"`
}

// NewAddExerciseHandler returns an HTTP handler that appends an exercise
// entry to a user's log.
// @Summary Add an exercise
// @Description Appends an exercise to the user's ordered log. Date defaults to today.
// @Tags exercises
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "User id"
// @Param description formData string true "Exercise description"
// @Param duration formData string true "Duration in whole minutes"
// @Param date formData string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} handlers.AddExerciseResponse "Stored entry"
// @Failure 400 {object} handlers.ErrorResponse "Description and duration are required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Description and duration are required"})
			return
		}

		req := AddExerciseRequest{
			Description: r.PostFormValue("description"),
			Duration:    r.PostFormValue("duration"),
			Date:        r.PostFormValue("date"),
		}
		if err := validation.Validate(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Description and duration are required"})
			return
		}

		userID := chi.URLParam(r, "id")
		user, entry, err := svc.AddExercise(r.Context(), userID, req.Description, req.Duration, req.Date)
		if err != nil {
			switch err {
			case services.ErrExerciseFieldsRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Description and duration are required"})
			case services.ErrDurationNotNumeric:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Duration must be a whole number"})
			case services.ErrInvalidDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid date"})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(AddExerciseResponse{
			Username:    user.Username,
			ID:          user.ID,
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        entry.Date,
		})
	}
}
