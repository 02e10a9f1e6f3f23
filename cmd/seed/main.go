// Command seed loads a default exercise catalog into MongoDB. Catalog writes
// happen here, not through the API: the /exercises surface is read-only.
//
// Seeding is idempotent — entries are upserted by name, so rerunning the
// command refreshes descriptions without duplicating documents.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/infrastructure/config"
	mongodb "github.com/fittrack/fitness-api/internal/infrastructure/db/mongo"
	"github.com/fittrack/fitness-api/pkg/logger"
)

type seedExercise struct {
	Name         string
	Category     domain.Category
	Description  string
	MuscleGroups []string
	Instructions string
}

var catalog = []seedExercise{
	{
		Name:         "Barbell Squat",
		Category:     domain.CategoryStrength,
		Description:  "Compound lower-body lift performed with a barbell across the upper back.",
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings", "core"},
		Instructions: "Keep the bar over mid-foot, brace the core, and squat to at least parallel.",
	},
	{
		Name:         "Deadlift",
		Category:     domain.CategoryStrength,
		Description:  "Hip-hinge pull from the floor to a standing lockout.",
		MuscleGroups: []string{"hamstrings", "glutes", "back", "core"},
		Instructions: "Set the back flat, push through the floor, and lock out with the hips.",
	},
	{
		Name:         "Bench Press",
		Category:     domain.CategoryStrength,
		Description:  "Horizontal press performed lying on a flat bench.",
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
	},
	{
		Name:         "Pull-Up",
		Category:     domain.CategoryStrength,
		Description:  "Bodyweight vertical pull from a dead hang.",
		MuscleGroups: []string{"back", "biceps", "forearms"},
	},
	{
		Name:         "Overhead Press",
		Category:     domain.CategoryStrength,
		MuscleGroups: []string{"shoulders", "triceps", "core"},
	},
	{
		Name:         "Running",
		Category:     domain.CategoryCardio,
		Description:  "Steady-state or interval running, outdoors or on a treadmill.",
		MuscleGroups: []string{"legs", "core"},
	},
	{
		Name:         "Rowing",
		Category:     domain.CategoryCardio,
		Description:  "Full-body cardio on a rowing ergometer.",
		MuscleGroups: []string{"back", "legs", "arms"},
	},
	{
		Name:         "Cycling",
		Category:     domain.CategoryCardio,
		MuscleGroups: []string{"quadriceps", "hamstrings", "calves"},
	},
	{
		Name:         "Jump Rope",
		Category:     domain.CategoryCardio,
		MuscleGroups: []string{"calves", "shoulders", "forearms"},
	},
	{
		Name:         "Hamstring Stretch",
		Category:     domain.CategoryFlexibility,
		Description:  "Static stretch targeting the posterior chain.",
		MuscleGroups: []string{"hamstrings", "lower back"},
	},
	{
		Name:         "Hip Flexor Stretch",
		Category:     domain.CategoryFlexibility,
		MuscleGroups: []string{"hip flexors", "quadriceps"},
	},
	{
		Name:         "Single-Leg Stand",
		Category:     domain.CategoryBalance,
		Description:  "Timed balance hold on one leg, eyes open or closed.",
		MuscleGroups: []string{"ankles", "core"},
	},
	{
		Name:         "Bosu Ball Squat",
		Category:     domain.CategoryBalance,
		MuscleGroups: []string{"quadriceps", "glutes", "core"},
	},
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.Production()})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	col := db.Collection("exercises")
	now := time.Now().UTC()

	var upserted int
	for _, e := range catalog {
		update := bson.M{
			"$set": bson.M{
				"category":     string(e.Category),
				"description":  e.Description,
				"muscleGroups": e.MuscleGroups,
				"instructions": e.Instructions,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"name":      e.Name,
				"createdAt": now,
			},
		}
		res, err := col.UpdateOne(ctx, bson.M{"name": e.Name}, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Fatal().Err(err).Str("exercise", e.Name).Msg("seed upsert failed")
		}
		if res.UpsertedCount > 0 {
			upserted++
		}
	}

	log.Info().Int("total", len(catalog)).Int("new", upserted).Msg("exercise catalog seeded")
}
