package services

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// UserService implements user lookups. There are no create or update
// operations; the users collection is maintained out of band.
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, appLogger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   appLogger.WithComponent("user_service"),
	}
}

// ListUsers returns every registered user
func (s *UserService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns a single user by id
func (s *UserService) GetUser(ctx context.Context, id int) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
