package ports

import (
	"context"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token together
	// with the public identity. Unknown email and wrong password are the same
	// failure (domain.ErrInvalidCredentials).
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
