package ports

import (
	"context"
	"time"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

// WorkoutUpdate carries the allow-listed mutable fields of a workout.
// Nil means "leave the stored value untouched". The owner reference and the
// store-maintained timestamps have no field here and can never be written
// through an update.
type WorkoutUpdate struct {
	Name      *string
	Date      *time.Time
	Exercises *[]domain.WorkoutExercise // whole-array replace, not a deep merge
	Notes     *string
	Duration  *int
	Completed *bool
}

// WorkoutRepository defines persistence operations for workout aggregates.
// Every lookup and mutation is scoped to (id, owner); a wrong-owner id
// behaves exactly like an absent one.
type WorkoutRepository interface {
	Insert(ctx context.Context, w *domain.Workout) (*domain.Workout, error)
	// FindByOwner returns the owner's workouts ordered by date descending.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Workout, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Workout, error)
	// UpdateByIDAndOwner applies a field-level $set of the non-nil fields and
	// returns the updated document.
	UpdateByIDAndOwner(ctx context.Context, id, ownerID string, update WorkoutUpdate) (*domain.Workout, error)
	// DeleteByIDAndOwner is a hard delete; there is no tombstone.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}
