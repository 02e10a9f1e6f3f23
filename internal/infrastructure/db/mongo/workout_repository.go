package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

const collectionWorkouts = "workouts"

type WorkoutRepository struct {
	col *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{col: db.Collection(collectionWorkouts)}
}

type workoutExerciseDoc struct {
	Exercise primitive.ObjectID `bson:"exercise"`
	Sets     int                `bson:"sets"`
	Reps     *int               `bson:"reps,omitempty"`
	Weight   *float64           `bson:"weight,omitempty"`
	Duration *int               `bson:"duration,omitempty"`
	Distance *float64           `bson:"distance,omitempty"`
	Notes    string             `bson:"notes,omitempty"`
}

type workoutDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Name      string               `bson:"name"`
	Date      time.Time            `bson:"date"`
	Exercises []workoutExerciseDoc `bson:"exercises"`
	Notes     string               `bson:"notes,omitempty"`
	Duration  *int                 `bson:"duration,omitempty"`
	Completed bool                 `bson:"completed"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func toExerciseDocs(exercises []domain.WorkoutExercise) ([]workoutExerciseDoc, error) {
	docs := make([]workoutExerciseDoc, 0, len(exercises))
	for _, e := range exercises {
		oid, err := primitive.ObjectIDFromHex(e.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed exercise id %q", domain.ErrInvalidInput, e.ExerciseID)
		}
		docs = append(docs, workoutExerciseDoc{
			Exercise: oid,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Distance: e.Distance,
			Notes:    e.Notes,
		})
	}
	return docs, nil
}

func (d workoutDoc) toDomain() *domain.Workout {
	exercises := make([]domain.WorkoutExercise, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: e.Exercise.Hex(),
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Duration:   e.Duration,
			Distance:   e.Distance,
			Notes:      e.Notes,
		})
	}
	return &domain.Workout{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		Name:      d.Name,
		Date:      d.Date,
		Exercises: exercises,
		Notes:     d.Notes,
		Duration:  d.Duration,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ownerScope builds the (id, owner) filter every single-document operation
// uses. A malformed id cannot address any document, so it maps to not-found
// rather than an internal error.
func ownerScope(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkoutNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrWorkoutNotFound
	}
	return bson.M{"_id": oid, "user": owner}, nil
}

func (r *WorkoutRepository) Insert(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(w.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed owner id", domain.ErrInvalidInput)
	}
	exercises, err := toExerciseDocs(w.Exercises)
	if err != nil {
		return nil, err
	}

	doc := workoutDoc{
		User:      owner,
		Name:      w.Name,
		Date:      w.Date,
		Exercises: exercises,
		Notes:     w.Notes,
		Duration:  w.Duration,
		Completed: w.Completed,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	created := *w
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *WorkoutRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*domain.Workout{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}
	defer cursor.Close(ctx)

	workouts := []*domain.Workout{}
	for cursor.Next(ctx) {
		var doc workoutDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode workout: %w", err)
		}
		workouts = append(workouts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}

func (r *WorkoutRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(id, ownerID)
	if err != nil {
		return nil, err
	}

	var doc workoutDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateByIDAndOwner performs one atomic $set of the non-nil allow-listed
// fields plus updatedAt, returning the post-update document. The owner field
// is part of the filter, never of the update.
func (r *WorkoutRepository) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, update ports.WorkoutUpdate) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(id, ownerID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Exercises != nil {
		exercises, err := toExerciseDocs(*update.Exercises)
		if err != nil {
			return nil, err
		}
		set["exercises"] = exercises
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc workoutDoc
	err = r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WorkoutRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}
