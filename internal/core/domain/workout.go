package domain

import (
	"errors"
	"time"
)

// ErrWorkoutNotFound covers both a genuinely absent workout and one owned by
// another user. The two cases are indistinguishable to callers; existence is
// never leaked across owners.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutExercise is one logged entry inside a workout. It references a
// catalog Exercise by id; Exercise is filled in at read time when the
// reference resolves (a missing catalog entry is a tolerated broken link).
type WorkoutExercise struct {
	ExerciseID string    `json:"exercise"`
	Exercise   *Exercise `json:"-"`
	Sets       int       `json:"sets"`
	Reps       *int      `json:"reps,omitempty"`
	Weight     *float64  `json:"weight,omitempty"`
	Duration   *int      `json:"duration,omitempty"` // seconds
	Distance   *float64  `json:"distance,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// Workout is the aggregate root. UserID is set from the authenticated session
// at creation and is immutable for the lifetime of the record; every query
// that touches a workout is scoped to (id, owner).
type Workout struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
	Duration  *int              `json:"duration,omitempty"` // minutes
	Completed bool              `json:"completed"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
