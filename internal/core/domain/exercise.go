package domain

import (
	"errors"
	"time"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Category classifies a catalog exercise. The set is closed: values outside
// it are rejected at the model boundary, not just at input validation.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryBalance     Category = "balance"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryFlexibility, CategoryBalance:
		return true
	}
	return false
}

// Exercise is a catalog entry: read-mostly reference data that workout
// entries point at. Its write path lives outside the API (see cmd/seed).
type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Description  string    `json:"description,omitempty"`
	MuscleGroups []string  `json:"muscleGroups,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
