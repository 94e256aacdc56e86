package repository

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/storage"
)

const usersCollection = "users"

// UserRepository is the flat-file implementation of ports.UserRepository.
// Users are read-only; nothing in the service writes this collection.
type UserRepository struct {
	store  *storage.Store
	logger *logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *storage.Store, appLogger *logger.Logger) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: appLogger.WithComponent("user_repository"),
	}
}

func (r *UserRepository) load() []entities.User {
	users := []entities.User{}
	_ = r.store.Read(usersCollection, &users)
	return users
}

// List returns every registered user
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	return r.load(), nil
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(ctx context.Context, id int) (*entities.User, error) {
	for _, u := range r.load() {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}

	return nil, entities.ErrUserNotFound
}
