package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserNotFound     = errors.New("user not found")
)

// UserReader defines read operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
}

// UserService handles user creation and listing.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// CreateUser registers a new user under a fresh uuid. Usernames are not
// deduplicated.
func (svc *UserService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		logger.Log.Errorw("username missing on create")
		return nil, ErrUsernameRequired
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &user, nil
}

// ListUsers returns all users in creation order.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
