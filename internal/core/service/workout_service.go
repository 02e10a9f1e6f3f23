package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// WorkoutService implements the owner-scoped CRUD contract over workouts.
// Concurrent updates to the same workout are last-writer-wins: each write is
// one atomic document operation and no optimistic-concurrency token is kept.
type WorkoutService struct {
	repo    ports.WorkoutRepository
	catalog ports.ExerciseRepository
	log     zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, catalog ports.ExerciseRepository, log zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, catalog: catalog, log: log}
}

func (s *WorkoutService) List(ctx context.Context, ownerID string) ([]*domain.Workout, error) {
	workouts, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error().Err(err).Str("owner", ownerID).Msg("list workouts failed")
		return nil, mapStoreError(err)
	}
	s.resolveExercises(ctx, workouts...)
	return workouts, nil
}

func (s *WorkoutService) Get(ctx context.Context, ownerID, workoutID string) (*domain.Workout, error) {
	w, err := s.repo.FindByIDAndOwner(ctx, workoutID, ownerID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	s.resolveExercises(ctx, w)
	return w, nil
}

// Create builds a new workout with the owner taken from the session identity.
// Any owner field a client smuggles into the payload never reaches this point;
// the input type simply has no place for it. Exercise references are stored
// without a catalog existence check and resolved lazily on reads.
func (s *WorkoutService) Create(ctx context.Context, ownerID string, input ports.CreateWorkoutInput) (*domain.Workout, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	date := now
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}
	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	w := &domain.Workout{
		UserID:    ownerID,
		Name:      input.Name,
		Date:      date,
		Exercises: toDomainExercises(input.Exercises),
		Notes:     input.Notes,
		Duration:  input.Duration,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, w)
	if err != nil {
		s.log.Error().Err(err).Str("owner", ownerID).Msg("create workout failed")
		return nil, mapStoreError(err)
	}

	s.log.Info().Str("workout_id", created.ID).Str("owner", ownerID).Msg("workout created")
	return created, nil
}

// Update applies the allow-listed fields only. Replacing exercises swaps the
// whole sequence; there is no per-entry merge.
func (s *WorkoutService) Update(ctx context.Context, ownerID, workoutID string, input ports.UpdateWorkoutInput) (*domain.Workout, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	update := ports.WorkoutUpdate{
		Name:      input.Name,
		Date:      input.Date,
		Notes:     input.Notes,
		Duration:  input.Duration,
		Completed: input.Completed,
	}
	if input.Exercises != nil {
		exercises := toDomainExercises(*input.Exercises)
		update.Exercises = &exercises
	}

	w, err := s.repo.UpdateByIDAndOwner(ctx, workoutID, ownerID, update)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.resolveExercises(ctx, w)
	return w, nil
}

func (s *WorkoutService) Delete(ctx context.Context, ownerID, workoutID string) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, workoutID, ownerID); err != nil {
		return mapStoreError(err)
	}
	s.log.Info().Str("workout_id", workoutID).Str("owner", ownerID).Msg("workout deleted")
	return nil
}

// resolveExercises attaches catalog entries to workout exercises in a single
// bulk lookup. Resolution is best-effort: a reference that no longer exists
// in the catalog stays unresolved, and a catalog read failure only logs.
func (s *WorkoutService) resolveExercises(ctx context.Context, workouts ...*domain.Workout) {
	var ids []string
	seen := make(map[string]struct{})
	for _, w := range workouts {
		for _, e := range w.Exercises {
			if _, ok := seen[e.ExerciseID]; ok {
				continue
			}
			seen[e.ExerciseID] = struct{}{}
			ids = append(ids, e.ExerciseID)
		}
	}
	if len(ids) == 0 {
		return
	}

	resolved, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("exercise resolution failed, returning unresolved references")
		return
	}

	for _, w := range workouts {
		for i := range w.Exercises {
			w.Exercises[i].Exercise = resolved[w.Exercises[i].ExerciseID]
		}
	}
}

func toDomainExercises(inputs []ports.WorkoutExerciseInput) []domain.WorkoutExercise {
	exercises := make([]domain.WorkoutExercise, 0, len(inputs))
	for _, in := range inputs {
		sets := 1
		if in.Sets != nil && *in.Sets > 0 {
			sets = *in.Sets
		}
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: in.ExerciseID,
			Sets:       sets,
			Reps:       in.Reps,
			Weight:     in.Weight,
			Duration:   in.Duration,
			Distance:   in.Distance,
			Notes:      in.Notes,
		})
	}
	return exercises
}
