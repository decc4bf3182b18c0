package store

import (
	"context"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/persistence"
	"reptrack/reptrack/internal/storage"

	"github.com/sirupsen/logrus"
)

// PlanStore holds the user's workout plans.
type PlanStore struct {
	*Store[domain.WorkoutPlan]
}

func NewPlanStore(kv storage.KeyValueStore) *PlanStore {
	return &PlanStore{
		Store: New("plans", persistence.NewPlanAdapter(kv)),
	}
}

// ScheduleStore holds the user's weekly schedules.
type ScheduleStore struct {
	*Store[domain.Schedule]
}

func NewScheduleStore(kv storage.KeyValueStore) *ScheduleStore {
	return &ScheduleStore{
		Store: New("schedules", persistence.NewScheduleAdapter(kv)),
	}
}

// ClearPlanRefs rewrites every schedule referencing the given plan id,
// setting the matching weekday slots to null and leaving all other slots
// untouched. Called when a plan is deleted (cascade on weak references).
// Untouched schedules are not rewritten, but the whole collection is
// persisted either way since persistence is whole-slot.
func (s *ScheduleStore) ClearPlanRefs(planID string) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if !s.items[i].References(planID) {
			continue
		}
		// Copy-on-write so snapshots handed to observers and in-flight
		// persists keep the weekday map they were taken with.
		rewritten := make(map[domain.Weekday]*string, len(s.items[i].Weekdays))
		for day, ref := range s.items[i].Weekdays {
			if ref != nil && *ref == planID {
				rewritten[day] = nil
			} else {
				rewritten[day] = ref
			}
		}
		s.items[i].Weekdays = rewritten
		changed = true
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if !changed {
		return
	}
	s.notify(snapshot)
	s.persistAsync(snapshot)
}

// WorkoutStore holds logged workout sessions.
type WorkoutStore struct {
	*Store[domain.Workout]
}

func NewWorkoutStore(kv storage.KeyValueStore) *WorkoutStore {
	return &WorkoutStore{
		Store: New("workouts", persistence.NewWorkoutAdapter(kv)),
	}
}

// Clear empties the collection and removes the durable slot ("clear all
// history"). Same optimistic policy as single mutations: memory first,
// storage best-effort.
func (s *WorkoutStore) Clear() {
	s.mu.Lock()
	s.items = []domain.Workout{}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := s.adapter.Clear(context.Background()); err != nil {
			logrus.Errorf("failed to clear workouts: %s", err)
		}
	}()
}
