package ports

import (
	"context"
	"time"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

// WorkoutExerciseInput is one logged entry in a create or update payload.
// ExerciseID is not checked against the catalog at write time; unresolved
// references are tolerated and resolved best-effort on reads.
type WorkoutExerciseInput struct {
	ExerciseID string
	Sets       *int // defaults to 1 when absent
	Reps       *int
	Weight     *float64
	Duration   *int // seconds
	Distance   *float64
	Notes      string
}

// CreateWorkoutInput carries all client-settable fields for a new workout.
// The owner never comes from the payload; services inject it from the session.
type CreateWorkoutInput struct {
	Name      string
	Date      *time.Time // defaults to now when absent
	Exercises []WorkoutExerciseInput
	Notes     string
	Duration  *int // minutes
	Completed *bool
}

// UpdateWorkoutInput is the partial-update payload. Only these fields are
// mutable; anything else in the client payload is dropped before it reaches
// the store.
type UpdateWorkoutInput struct {
	Name      *string
	Date      *time.Time
	Exercises *[]WorkoutExerciseInput
	Notes     *string
	Duration  *int
	Completed *bool
}

// WorkoutService defines the owner-scoped use-case operations over workouts.
// Callers must pass the identity resolved by the session middleware; no
// operation runs unauthenticated.
type WorkoutService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Workout, error)
	Get(ctx context.Context, ownerID, workoutID string) (*domain.Workout, error)
	Create(ctx context.Context, ownerID string, input CreateWorkoutInput) (*domain.Workout, error)
	Update(ctx context.Context, ownerID, workoutID string, input UpdateWorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, ownerID, workoutID string) error
}
