package ports

import (
	"context"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

// ExerciseRepository reads the exercise catalog. The API surface is
// read-only; catalog writes happen out of band (cmd/seed).
type ExerciseRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Exercise, error)
	// FindByIDs bulk-loads catalog entries for the read-time join on workout
	// exercises. Unknown ids are simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Exercise, error)
	// List returns catalog entries, optionally restricted to one category.
	List(ctx context.Context, category domain.Category) ([]*domain.Exercise, error)
}
