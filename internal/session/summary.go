package session

import "reptrack/reptrack/internal/domain"

// Summary is the post-session recap shown when a workout is finished.
type Summary struct {
	TotalExercises     int    `json:"totalExercises"`
	CompletedExercises int    `json:"completedExercises"` // exercises whose every set is completed
	DurationBucket     string `json:"durationBucket"`
}

// Summarize computes the recap for one logged workout.
func Summarize(w domain.Workout) Summary {
	return Summary{
		TotalExercises:     len(w.Exercises),
		CompletedExercises: w.CompletedExercises(),
		DurationBucket:     DurationBucket(w.Duration),
	}
}

// DurationBucket maps a duration in seconds to a human bucket label.
func DurationBucket(seconds int) string {
	minutes := seconds / 60
	switch {
	case minutes < 15:
		return "under 15 min"
	case minutes < 30:
		return "15-30 min"
	case minutes < 45:
		return "30-45 min"
	case minutes < 60:
		return "45-60 min"
	default:
		return "60+ min"
	}
}
