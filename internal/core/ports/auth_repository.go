package ports

import (
	"context"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// FindByEmail returns the stored hash and is internal to the auth service;
// it is never exposed through a handler.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
