package handler

import (
	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createWorkoutRequest) ports.CreateWorkoutInput {
	return ports.CreateWorkoutInput{
		Name:      req.Name,
		Date:      req.Date,
		Exercises: toExerciseInputs(req.Exercises),
		Notes:     req.Notes,
		Duration:  req.Duration,
		Completed: req.Completed,
	}
}

func toUpdateInput(req updateWorkoutRequest) ports.UpdateWorkoutInput {
	input := ports.UpdateWorkoutInput{
		Name:      req.Name,
		Date:      req.Date,
		Notes:     req.Notes,
		Duration:  req.Duration,
		Completed: req.Completed,
	}
	if req.Exercises != nil {
		exercises := toExerciseInputs(*req.Exercises)
		input.Exercises = &exercises
	}
	return input
}

func toExerciseInputs(reqs []workoutExerciseRequest) []ports.WorkoutExerciseInput {
	inputs := make([]ports.WorkoutExerciseInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, ports.WorkoutExerciseInput{
			ExerciseID: r.Exercise,
			Sets:       r.Sets,
			Reps:       r.Reps,
			Weight:     r.Weight,
			Duration:   r.Duration,
			Distance:   r.Distance,
			Notes:      r.Notes,
		})
	}
	return inputs
}

// --- Domain → HTTP response ---

func toWorkoutResponse(w *domain.Workout) workoutResponse {
	exercises := make([]workoutExerciseResponse, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		ref := exerciseRefResponse{ID: e.ExerciseID}
		if e.Exercise != nil {
			ref.Name = e.Exercise.Name
			ref.Category = string(e.Exercise.Category)
			ref.MuscleGroups = e.Exercise.MuscleGroups
		}
		exercises = append(exercises, workoutExerciseResponse{
			Exercise: ref,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Distance: e.Distance,
			Notes:    e.Notes,
		})
	}
	return workoutResponse{
		ID:        w.ID,
		User:      w.UserID,
		Name:      w.Name,
		Date:      w.Date,
		Exercises: exercises,
		Notes:     w.Notes,
		Duration:  w.Duration,
		Completed: w.Completed,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWorkoutResponses(workouts []*domain.Workout) []workoutResponse {
	responses := make([]workoutResponse, 0, len(workouts))
	for _, w := range workouts {
		responses = append(responses, toWorkoutResponse(w))
	}
	return responses
}
