package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// --- Request types ---

type workoutExerciseRequest struct {
	Exercise string   `json:"exercise" validate:"required"`
	Sets     *int     `json:"sets"     validate:"omitempty,gte=1"`
	Reps     *int     `json:"reps"     validate:"omitempty,gte=0"`
	Weight   *float64 `json:"weight"   validate:"omitempty,gte=0"`
	Duration *int     `json:"duration" validate:"omitempty,gte=0"`
	Distance *float64 `json:"distance" validate:"omitempty,gte=0"`
	Notes    string   `json:"notes"`
}

type createWorkoutRequest struct {
	Name      string                   `json:"name" validate:"required"`
	Date      *time.Time               `json:"date"`
	Exercises []workoutExerciseRequest `json:"exercises" validate:"dive"`
	Notes     string                   `json:"notes"`
	Duration  *int                     `json:"duration" validate:"omitempty,gte=0"`
	Completed *bool                    `json:"completed"`
}

// updateWorkoutRequest is the allow-list for partial updates. Fields absent
// from this struct — the owner reference above all — are silently dropped by
// Bind and can never reach the store.
type updateWorkoutRequest struct {
	Name      *string                   `json:"name"`
	Date      *time.Time                `json:"date"`
	Exercises *[]workoutExerciseRequest `json:"exercises" validate:"omitempty,dive"`
	Notes     *string                   `json:"notes"`
	Duration  *int                      `json:"duration" validate:"omitempty,gte=0"`
	Completed *bool                     `json:"completed"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

// exerciseRefResponse renders a workout's exercise reference. A resolved
// reference carries the catalog fields; an unresolved one only the id.
type exerciseRefResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Category     string   `json:"category,omitempty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
}

type workoutExerciseResponse struct {
	Exercise exerciseRefResponse `json:"exercise"`
	Sets     int                 `json:"sets"`
	Reps     *int                `json:"reps,omitempty"`
	Weight   *float64            `json:"weight,omitempty"`
	Duration *int                `json:"duration,omitempty"`
	Distance *float64            `json:"distance,omitempty"`
	Notes    string              `json:"notes,omitempty"`
}

type workoutResponse struct {
	ID        string                    `json:"id"`
	User      string                    `json:"user"`
	Name      string                    `json:"name"`
	Date      time.Time                 `json:"date"`
	Exercises []workoutExerciseResponse `json:"exercises"`
	Notes     string                    `json:"notes,omitempty"`
	Duration  *int                      `json:"duration,omitempty"`
	Completed bool                      `json:"completed"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

type workoutEnvelope struct {
	Workout workoutResponse `json:"workout"`
}

type listWorkoutsResponse struct {
	Workouts []workoutResponse `json:"workouts"`
}
