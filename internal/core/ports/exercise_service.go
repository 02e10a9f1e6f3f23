package ports

import (
	"context"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

type ExerciseService interface {
	// List returns the catalog, filtered by category when one is given.
	// An unknown category value is rejected with domain.ErrInvalidInput.
	List(ctx context.Context, category string) ([]*domain.Exercise, error)
	Get(ctx context.Context, id string) (*domain.Exercise, error)
}
