package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WorkoutSet is one logged set: reps, weight and whether it was completed.
type WorkoutSet struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// UnmarshalJSON decodes a set tolerantly: a wrong-typed or missing field
// falls back to its zero value instead of failing the element it belongs to.
// Persisted history may carry sets written by older builds with looser types.
func (s *WorkoutSet) UnmarshalJSON(data []byte) error {
	*s = WorkoutSet{}
	var raw struct {
		Reps      json.RawMessage `json:"reps"`
		Weight    json.RawMessage `json:"weight"`
		Completed json.RawMessage `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if raw.Reps != nil {
		_ = json.Unmarshal(raw.Reps, &s.Reps)
	}
	if raw.Weight != nil {
		_ = json.Unmarshal(raw.Weight, &s.Weight)
	}
	if raw.Completed != nil {
		_ = json.Unmarshal(raw.Completed, &s.Completed)
	}
	return nil
}

// WorkoutExercise groups the sets logged for one exercise during a session.
type WorkoutExercise struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

// Workout is a finished, logged workout session.
//
// PlanID is a weak reference to the plan the session was started from; it is
// retained even after the plan is deleted (no cascade on workouts), so the
// reference may not resolve.
type Workout struct {
	ID        string            `json:"id"`
	PlanID    *string           `json:"planId,omitempty"`
	Date      time.Time         `json:"date"`
	StartTime int64             `json:"startTime"` // epoch millis
	EndTime   int64             `json:"endTime"`   // epoch millis
	Duration  int               `json:"duration"`  // seconds, derived from start/end
	Exercises []WorkoutExercise `json:"exercises"`
}

// NewWorkout creates a logged session for the given time range, deriving the
// duration in whole seconds (clamped to zero for inverted ranges).
func NewWorkout(planID *string, start, end time.Time, exercises []WorkoutExercise) Workout {
	duration := int(end.Sub(start) / time.Second)
	if duration < 0 {
		duration = 0
	}
	return Workout{
		ID:        uuid.NewString(),
		PlanID:    planID,
		Date:      start,
		StartTime: start.UnixMilli(),
		EndTime:   end.UnixMilli(),
		Duration:  duration,
		Exercises: exercises,
	}
}

// Normalize repairs structurally odd persisted data: nil slices become empty
// and negative numerics are clamped to zero. Missing fields already decode to
// their zero values, so a malformed element never has to be rejected here.
func (w *Workout) Normalize() {
	if w.Duration < 0 {
		w.Duration = 0
	}
	if w.Exercises == nil {
		w.Exercises = []WorkoutExercise{}
	}
	for i := range w.Exercises {
		if w.Exercises[i].Sets == nil {
			w.Exercises[i].Sets = []WorkoutSet{}
		}
		for j := range w.Exercises[i].Sets {
			set := &w.Exercises[i].Sets[j]
			if set.Reps < 0 {
				set.Reps = 0
			}
			if set.Weight < 0 {
				set.Weight = 0
			}
		}
	}
}

// CompletedExercises counts exercises whose every logged set is completed.
// An exercise with no sets does not count.
func (w *Workout) CompletedExercises() int {
	count := 0
	for _, ex := range w.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		done := true
		for _, set := range ex.Sets {
			if !set.Completed {
				done = false
				break
			}
		}
		if done {
			count++
		}
	}
	return count
}
