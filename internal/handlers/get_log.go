package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (*models.User, []models.Exercise, error)
}

// LogResponse represents a user's filtered exercise log
// swagger:model LogResponse
type LogResponse struct {
	// Owner display name
	// example: alice
	Username string `json:"username"`

	// Number of entries after filtering and limiting
	// example: 1
	Count int `json:"count"`

	// Owner id
	// example: 3c0b44f5-6a61-4f39-9c3b-19c6a7f1f6b2
	ID string `json:"_id"`

	// Entries in append order
	Log []models.Exercise `json:"log"`
}

// NewGetLogHandler returns an HTTP handler that serves a user's exercise log.
// @Summary Get a user's exercise log
// @Description Returns the log filtered to the inclusive from/to range and truncated to the first limit entries.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} handlers.LogResponse "Filtered log"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id}/logs [get]
func NewGetLogHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := chi.URLParam(r, "id")
		query := r.URL.Query()

		user, entries, err := svc.GetLog(r.Context(), userID,
			query.Get("from"), query.Get("to"), query.Get("limit"))
		if err != nil {
			switch err {
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

		if entries == nil {
			entries = []models.Exercise{}
		}
		json.NewEncoder(w).Encode(LogResponse{
			Username: user.Username,
			Count:    len(entries),
			ID:       user.ID,
			Log:      entries,
		})
	}
}
