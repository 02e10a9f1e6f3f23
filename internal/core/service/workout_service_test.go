package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubWorkoutRepo struct {
	workouts   map[string]*domain.Workout
	nextID     int
	insertErr  error
	lastUpdate ports.WorkoutUpdate
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{workouts: make(map[string]*domain.Workout), nextID: 1}
}

func cloneWorkout(w *domain.Workout) *domain.Workout {
	clone := *w
	clone.Exercises = append([]domain.WorkoutExercise(nil), w.Exercises...)
	return &clone
}

func (r *stubWorkoutRepo) Insert(_ context.Context, w *domain.Workout) (*domain.Workout, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	created := cloneWorkout(w)
	created.ID = "workout_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.workouts[created.ID] = cloneWorkout(created)
	return created, nil
}

// FindByOwner mirrors the real Mongo query: owner filter plus date-descending sort.
func (r *stubWorkoutRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Workout, error) {
	var matched []*domain.Workout
	for _, w := range r.workouts {
		if w.UserID == ownerID {
			matched = append(matched, cloneWorkout(w))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
	return matched, nil
}

func (r *stubWorkoutRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, domain.ErrWorkoutNotFound
	}
	return cloneWorkout(w), nil
}

func (r *stubWorkoutRepo) UpdateByIDAndOwner(_ context.Context, id, ownerID string, update ports.WorkoutUpdate) (*domain.Workout, error) {
	r.lastUpdate = update
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, domain.ErrWorkoutNotFound
	}
	if update.Name != nil {
		w.Name = *update.Name
	}
	if update.Date != nil {
		w.Date = *update.Date
	}
	if update.Exercises != nil {
		w.Exercises = append([]domain.WorkoutExercise(nil), *update.Exercises...)
	}
	if update.Notes != nil {
		w.Notes = *update.Notes
	}
	if update.Duration != nil {
		w.Duration = update.Duration
	}
	if update.Completed != nil {
		w.Completed = *update.Completed
	}
	w.UpdatedAt = time.Now().UTC()
	return cloneWorkout(w), nil
}

func (r *stubWorkoutRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID string) error {
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return domain.ErrWorkoutNotFound
	}
	delete(r.workouts, id)
	return nil
}

type stubExerciseRepo struct {
	exercises map[string]*domain.Exercise
	findErr   error
	listErr   error
}

func newStubExerciseRepo() *stubExerciseRepo {
	return &stubExerciseRepo{exercises: make(map[string]*domain.Exercise)}
}

func (r *stubExerciseRepo) FindByID(_ context.Context, id string) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	return e, nil
}

func (r *stubExerciseRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Exercise, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	resolved := make(map[string]*domain.Exercise)
	for _, id := range ids {
		if e, ok := r.exercises[id]; ok {
			resolved[id] = e
		}
	}
	return resolved, nil
}

func (r *stubExerciseRepo) List(_ context.Context, category domain.Category) ([]*domain.Exercise, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var matched []*domain.Exercise
	for _, e := range r.exercises {
		if category == "" || e.Category == category {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func newWorkoutService(repo *stubWorkoutRepo, catalog *stubExerciseRepo) *WorkoutService {
	return NewWorkoutService(repo, catalog, zerolog.Nop())
}

func intPtr(v int) *int              { return &v }
func boolPtr(v bool) *bool           { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestWorkoutService_Create_Defaults(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name: "Leg Day",
		Exercises: []ports.WorkoutExerciseInput{
			{ExerciseID: "ex_1", Reps: intPtr(10)},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.UserID != "owner_a" {
		t.Fatalf("expected owner from session, got %q", created.UserID)
	}
	if created.Completed {
		t.Fatalf("expected completed to default false")
	}
	if created.Date.Before(before) {
		t.Fatalf("expected date to default to now, got %v", created.Date)
	}
	if created.Exercises[0].Sets != 1 {
		t.Fatalf("expected sets to default to 1, got %d", created.Exercises[0].Sets)
	}
}

func TestWorkoutService_Create_ExplicitFields(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name:      "Morning Run",
		Date:      &date,
		Completed: boolPtr(true),
		Duration:  intPtr(45),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !created.Date.Equal(date) {
		t.Fatalf("expected explicit date kept, got %v", created.Date)
	}
	if !created.Completed {
		t.Fatalf("expected explicit completed kept")
	}
	if created.Duration == nil || *created.Duration != 45 {
		t.Fatalf("expected duration 45, got %v", created.Duration)
	}
}

func TestWorkoutService_Create_MissingName(t *testing.T) {
	svc := newWorkoutService(newStubWorkoutRepo(), newStubExerciseRepo())

	if _, err := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Exercise references are not validated against the catalog at write time;
// an unknown id is stored and simply stays unresolved on reads.
func TestWorkoutService_Create_ToleratesUnknownExercise(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, err := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name:      "Mystery Day",
		Exercises: []ports.WorkoutExerciseInput{{ExerciseID: "nonexistent"}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Exercises[0].ExerciseID != "nonexistent" {
		t.Fatalf("expected dangling reference stored")
	}
}

func TestWorkoutService_Create_StoreFailure(t *testing.T) {
	repo := newStubWorkoutRepo()
	repo.insertErr = errors.New("no reachable servers")
	svc := newWorkoutService(repo, newStubExerciseRepo())

	_, err := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "X"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func TestWorkoutService_List_OwnerScopedAndSorted(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	newer := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// An earlier-dated workout created last must still sort after newer ones.
	_, _ = svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Newer", Date: &newer})
	_, _ = svc.Create(context.Background(), "owner_b", ports.CreateWorkoutInput{Name: "Foreign"})
	_, _ = svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Older", Date: &older})

	workouts, err := svc.List(context.Background(), "owner_a")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(workouts))
	}
	if workouts[0].Name != "Newer" || workouts[1].Name != "Older" {
		t.Fatalf("expected date-descending order, got %q then %q", workouts[0].Name, workouts[1].Name)
	}
	for _, w := range workouts {
		if w.UserID != "owner_a" {
			t.Fatalf("foreign workout leaked into list: %+v", w)
		}
	}
}

func TestWorkoutService_List_Empty(t *testing.T) {
	svc := newWorkoutService(newStubWorkoutRepo(), newStubExerciseRepo())

	workouts, err := svc.List(context.Background(), "owner_a")
	if err != nil {
		t.Fatalf("empty list must not be an error: %v", err)
	}
	if len(workouts) != 0 {
		t.Fatalf("expected no workouts, got %d", len(workouts))
	}
}

func TestWorkoutService_Get_ResolvesExercises(t *testing.T) {
	repo := newStubWorkoutRepo()
	catalog := newStubExerciseRepo()
	catalog.exercises["ex_1"] = &domain.Exercise{ID: "ex_1", Name: "Barbell Squat", Category: domain.CategoryStrength}
	svc := newWorkoutService(repo, catalog)

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name: "Leg Day",
		Exercises: []ports.WorkoutExerciseInput{
			{ExerciseID: "ex_1", Sets: intPtr(3)},
			{ExerciseID: "gone"},
		},
	})

	got, err := svc.Get(context.Background(), "owner_a", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Exercises[0].Exercise == nil || got.Exercises[0].Exercise.Name != "Barbell Squat" {
		t.Fatalf("expected resolved catalog entry, got %+v", got.Exercises[0].Exercise)
	}
	if got.Exercises[1].Exercise != nil {
		t.Fatalf("expected dangling reference to stay unresolved")
	}
}

// Wrong-owner access reports the same NotFound as a missing record.
func TestWorkoutService_Get_ForeignOwner(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Private"})

	if _, err := svc.Get(context.Background(), "owner_b", created.ID); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

// A catalog outage degrades to unresolved references, not a failed read.
func TestWorkoutService_Get_CatalogFailureTolerated(t *testing.T) {
	repo := newStubWorkoutRepo()
	catalog := newStubExerciseRepo()
	catalog.findErr = errors.New("catalog down")
	svc := newWorkoutService(repo, catalog)

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name:      "Leg Day",
		Exercises: []ports.WorkoutExerciseInput{{ExerciseID: "ex_1"}},
	})

	got, err := svc.Get(context.Background(), "owner_a", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Exercises[0].Exercise != nil {
		t.Fatalf("expected unresolved reference on catalog failure")
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestWorkoutService_Update_CompletedOnly(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Leg Day", Notes: "light"})

	updated, err := svc.Update(context.Background(), "owner_a", created.ID, ports.UpdateWorkoutInput{
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed true")
	}
	if updated.Name != "Leg Day" || updated.Notes != "light" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if updated.UserID != "owner_a" {
		t.Fatalf("owner changed: %q", updated.UserID)
	}
}

func TestWorkoutService_Update_ReplacesExerciseSequence(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{
		Name: "Leg Day",
		Exercises: []ports.WorkoutExerciseInput{
			{ExerciseID: "ex_1"}, {ExerciseID: "ex_2"},
		},
	})

	replacement := []ports.WorkoutExerciseInput{{ExerciseID: "ex_3", Sets: intPtr(5)}}
	updated, err := svc.Update(context.Background(), "owner_a", created.ID, ports.UpdateWorkoutInput{
		Exercises: &replacement,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Exercises) != 1 || updated.Exercises[0].ExerciseID != "ex_3" {
		t.Fatalf("expected whole-sequence replacement, got %+v", updated.Exercises)
	}
}

func TestWorkoutService_Update_NotFoundAndForeignOwner(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Private"})

	if _, err := svc.Update(context.Background(), "owner_a", "missing", ports.UpdateWorkoutInput{Name: strPtr("X")}); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound for missing id, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "owner_b", created.ID, ports.UpdateWorkoutInput{Name: strPtr("X")}); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound for foreign owner, got %v", err)
	}
	if repo.workouts[created.ID].Name != "Private" {
		t.Fatalf("foreign update mutated the record")
	}
}

func TestWorkoutService_Update_EmptyName(t *testing.T) {
	svc := newWorkoutService(newStubWorkoutRepo(), newStubExerciseRepo())

	if _, err := svc.Update(context.Background(), "owner_a", "id", ports.UpdateWorkoutInput{Name: strPtr("")}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWorkoutService_Update_AllFields(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Before"})

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), "owner_a", created.ID, ports.UpdateWorkoutInput{
		Name:      strPtr("After"),
		Date:      timePtr(date),
		Notes:     strPtr("harder"),
		Duration:  intPtr(60),
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "After" || !updated.Date.Equal(date) || updated.Notes != "harder" ||
		updated.Duration == nil || *updated.Duration != 60 || !updated.Completed {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestWorkoutService_Delete_ThenGet(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Doomed"})

	if err := svc.Delete(context.Background(), "owner_a", created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "owner_a", created.ID); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound after delete, got %v", err)
	}
	// Deleting again is NotFound, not a crash.
	if err := svc.Delete(context.Background(), "owner_a", created.ID); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound on double delete, got %v", err)
	}
}

func TestWorkoutService_Delete_ForeignOwner(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := newWorkoutService(repo, newStubExerciseRepo())

	created, _ := svc.Create(context.Background(), "owner_a", ports.CreateWorkoutInput{Name: "Private"})

	if err := svc.Delete(context.Background(), "owner_b", created.ID); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
	if _, ok := repo.workouts[created.ID]; !ok {
		t.Fatalf("foreign delete removed the record")
	}
}
