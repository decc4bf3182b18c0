package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanExercise is one exercise slot inside a workout plan.
type PlanExercise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TargetSets int    `json:"targetSets"` // must be >= 1 at save time
}

// WorkoutPlan is a reusable template the user builds once and runs many times.
// Plans are mutated wholesale on edit; there is no partial-field update.
type WorkoutPlan struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewWorkoutPlan creates a plan with a fresh ID and creation timestamp.
// Validation (non-empty name, at least one exercise) belongs to the
// service layer, not the entity.
func NewWorkoutPlan(name string, exercises []PlanExercise) WorkoutPlan {
	return WorkoutPlan{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: exercises,
		CreatedAt: time.Now(),
	}
}
