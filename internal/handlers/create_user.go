package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
	"github.com/sbilibin2017/exercise-tracker/pkg/validation"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
}

// CreateUserRequest represents the form body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username" validate:"required"`
}

// UserResponse represents a created or listed user
// swagger:model UserResponse
type UserResponse struct {
	// Display name
	// example: alice
	Username string `json:"username"`

	// Unique user id
	// example: 3c0b44f5-6a61-4f39-9c3b-19c6a7f1f6b2
	ID string `json:"_id"`
}

// ErrorResponse represents an error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Username is required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler that registers a new user.
// @Summary Create a new user
// @Description Stores a new user under a fresh unique id. Usernames are not deduplicated.
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} handlers.UserResponse "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Username is required"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			return
		}

		req := CreateUserRequest{Username: r.PostFormValue("username")}
		if err := validation.Validate(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Username)
		if err != nil {
			switch err {
			case services.ErrUsernameRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(UserResponse{
			Username: user.Username,
			ID:       user.ID,
		})
	}
}
