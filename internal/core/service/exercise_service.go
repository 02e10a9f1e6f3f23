package service

import (
	"context"
	"fmt"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService struct {
	repo ports.ExerciseRepository
}

func NewExerciseService(repo ports.ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) List(ctx context.Context, category string) ([]*domain.Exercise, error) {
	var filter domain.Category
	if category != "" {
		filter = domain.Category(category)
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
		}
	}

	exercises, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return exercises, nil
}

func (s *ExerciseService) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return exercise, nil
}
