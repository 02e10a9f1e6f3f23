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
)

const collectionExercises = "exercises"

type ExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{col: db.Collection(collectionExercises)}
}

type exerciseDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Category     string             `bson:"category"`
	Description  string             `bson:"description,omitempty"`
	MuscleGroups []string           `bson:"muscleGroups,omitempty"`
	Instructions string             `bson:"instructions,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d exerciseDoc) toDomain() *domain.Exercise {
	return &domain.Exercise{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Category:     domain.Category(d.Category),
		Description:  d.Description,
		MuscleGroups: d.MuscleGroups,
		Instructions: d.Instructions,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *ExerciseRepository) FindByID(ctx context.Context, id string) (*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExerciseNotFound
	}

	var doc exerciseDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs bulk-loads catalog entries with a single $in query. Malformed
// and unknown ids are skipped, not errors: workout references are allowed to
// dangle and reads resolve what they can.
func (r *ExerciseRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return map[string]*domain.Exercise{}, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	resolved := make(map[string]*domain.Exercise, len(oids))
	for cursor.Next(ctx) {
		var doc exerciseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode exercise: %w", err)
		}
		resolved[doc.ID.Hex()] = doc.toDomain()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return resolved, nil
}

func (r *ExerciseRepository) List(ctx context.Context, category domain.Category) ([]*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = string(category)
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer cursor.Close(ctx)

	exercises := []*domain.Exercise{}
	for cursor.Next(ctx) {
		var doc exerciseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode exercise: %w", err)
		}
		exercises = append(exercises, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}
