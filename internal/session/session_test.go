package session_test

import (
	"testing"
	"time"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		now    time.Time
		active bool
		want   int
	}{
		{"inactive is always zero", start, start.Add(90 * time.Second), false, 0},
		{"no known start time", time.Time{}, start, true, 0},
		{"whole seconds", start, start.Add(90*time.Second + 700*time.Millisecond), true, 90},
		{"clamped to zero for future start", start, start.Add(-time.Minute), true, 0},
		{"zero at the start instant", start, start, true, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, session.ElapsedSeconds(tc.start, tc.now, tc.active))
		})
	}
}

func TestTimer_StoppedReadsZero(t *testing.T) {
	timer := session.NewTimer()
	assert.Equal(t, 0, timer.Elapsed())

	timer.Start(time.Now().Add(-time.Hour), func(int) {})
	assert.Greater(t, timer.Elapsed(), 0)

	timer.Stop()
	assert.Equal(t, 0, timer.Elapsed())

	// Stop is idempotent.
	timer.Stop()
	assert.Equal(t, 0, timer.Elapsed())
}

func TestDurationBucket(t *testing.T) {
	assert.Equal(t, "under 15 min", session.DurationBucket(0))
	assert.Equal(t, "under 15 min", session.DurationBucket(14*60+59))
	assert.Equal(t, "15-30 min", session.DurationBucket(15*60))
	assert.Equal(t, "30-45 min", session.DurationBucket(44*60))
	assert.Equal(t, "45-60 min", session.DurationBucket(59*60))
	assert.Equal(t, "60+ min", session.DurationBucket(2*60*60))
}

func TestSummarize(t *testing.T) {
	workout := domain.Workout{
		ID:       "w-1",
		Duration: 40 * 60,
		Exercises: []domain.WorkoutExercise{
			{Name: "Bench Press", Sets: []domain.WorkoutSet{
				{Reps: 8, Weight: 60, Completed: true},
				{Reps: 8, Weight: 60, Completed: true},
			}},
			{Name: "Dumbbell Fly", Sets: []domain.WorkoutSet{
				{Reps: 12, Weight: 14, Completed: true},
				{Reps: 12, Weight: 14, Completed: false},
			}},
			{Name: "Skipped", Sets: []domain.WorkoutSet{}},
		},
	}

	summary := session.Summarize(workout)
	assert.Equal(t, 3, summary.TotalExercises)
	assert.Equal(t, 1, summary.CompletedExercises, "only fully-completed exercises count, and empty set lists never do")
	assert.Equal(t, "30-45 min", summary.DurationBucket)
}

func TestWeeklyTracker(t *testing.T) {
	// Wednesday, March 5th 2025, mid-afternoon local time.
	today := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)

	workouts := []domain.Workout{
		// Monday of the same week, logged close to midnight: counts for the
		// whole Monday.
		{ID: "w-1", Date: time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)},
		// Today, morning.
		{ID: "w-2", Date: time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC)},
		// Previous week: must not appear.
		{ID: "w-3", Date: time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC)},
	}

	days := session.WeeklyTracker(today, workouts)
	require.Len(t, days, 7)

	todayCount := 0
	for _, day := range days {
		if day.IsToday {
			todayCount++
		}
	}
	assert.Equal(t, 1, todayCount, "exactly one day is today")

	assert.Equal(t, domain.Sunday, days[0].Weekday)
	assert.Equal(t, domain.Saturday, days[6].Weekday)
	assert.Equal(t, 2, days[0].Date.Day(), "week starts on Sunday March 2nd")

	assert.True(t, days[1].HasWorkout, "Monday has the late-night workout")
	assert.True(t, days[3].HasWorkout, "Wednesday has today's workout")
	assert.True(t, days[3].IsToday)
	for _, i := range []int{0, 2, 4, 5, 6} {
		assert.False(t, days[i].HasWorkout, "day %d has no workout", i)
	}
}

func TestWeeklyTracker_NoWorkouts(t *testing.T) {
	days := session.WeeklyTracker(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), nil)
	require.Len(t, days, 7)
	assert.True(t, days[0].IsToday, "a Sunday is the first descriptor")
	for _, day := range days {
		assert.False(t, day.HasWorkout)
	}
}
