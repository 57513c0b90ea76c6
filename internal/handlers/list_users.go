package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List all users
// @Description Returns every registered user in creation order.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "All users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{Username: u.Username, ID: u.ID})
		}
		json.NewEncoder(w).Encode(resp)
	}
}
