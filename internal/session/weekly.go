package session

import (
	"time"

	"reptrack/reptrack/internal/domain"
)

// DayDescriptor is one day of the weekly activity tracker.
type DayDescriptor struct {
	Date       time.Time      `json:"date"`
	Weekday    domain.Weekday `json:"weekday"`
	IsToday    bool           `json:"isToday"`
	HasWorkout bool           `json:"hasWorkout"`
}

// WeeklyTracker produces exactly seven descriptors for the local week
// (Sunday through Saturday) containing "today". A day has a workout when any
// workout's local calendar date equals that day; matching is by
// year/month/day, not by timestamp range, so a workout logged at any local
// time counts for its whole day.
func WeeklyTracker(today time.Time, workouts []domain.Workout) []DayDescriptor {
	loc := today.Location()
	sunday := today.AddDate(0, 0, -int(today.Weekday()))

	days := make([]DayDescriptor, 7)
	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		descriptor := DayDescriptor{
			Date:    time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc),
			Weekday: domain.Weekdays()[i],
			IsToday: sameLocalDate(day, today),
		}
		for _, w := range workouts {
			if sameLocalDate(w.Date.In(loc), day) {
				descriptor.HasWorkout = true
				break
			}
		}
		days[i] = descriptor
	}
	return days
}

func sameLocalDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
