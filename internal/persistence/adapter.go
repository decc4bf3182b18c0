package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/storage"

	"github.com/sirupsen/logrus"
)

// Slot keys, one per entity collection.
const (
	PlansSlotKey     = "reptrack.plans"
	SchedulesSlotKey = "reptrack.schedules"
	WorkoutsSlotKey  = "reptrack.workouts"
)

// Entity is anything with a stable string identity.
type Entity interface {
	EntityID() string
}

// MirrorError is the typed "unable to persist/clear <entity>" failure raised
// by write operations. Read failures never surface as errors.
type MirrorError struct {
	Entity string
	Op     string // "persist" or "clear"
	Err    error
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *MirrorError) Unwrap() error { return e.Err }

// Adapter mirrors one entity collection to one durable storage slot. The slot
// holds the whole collection as a JSON array and is overwritten on every
// Persist; the adapter is a mirror, not a source of truth, except right after
// a Load at startup.
type Adapter[T Entity] struct {
	entity    string // plural entity name for slot-less log lines
	key       string
	store     storage.KeyValueStore
	normalize func(*T) // optional shape repair applied to each loaded element
}

// NewPlanAdapter mirrors workout plans.
func NewPlanAdapter(store storage.KeyValueStore) *Adapter[domain.WorkoutPlan] {
	return &Adapter[domain.WorkoutPlan]{
		entity: "plans",
		key:    PlansSlotKey,
		store:  store,
	}
}

// NewScheduleAdapter mirrors schedules, repairing missing weekday keys on load.
func NewScheduleAdapter(store storage.KeyValueStore) *Adapter[domain.Schedule] {
	return &Adapter[domain.Schedule]{
		entity:    "schedules",
		key:       SchedulesSlotKey,
		store:     store,
		normalize: func(s *domain.Schedule) { s.NormalizeWeekdays() },
	}
}

// NewWorkoutAdapter mirrors logged workouts, defaulting malformed numeric and
// boolean set fields on load.
func NewWorkoutAdapter(store storage.KeyValueStore) *Adapter[domain.Workout] {
	return &Adapter[domain.Workout]{
		entity:    "workouts",
		key:       WorkoutsSlotKey,
		store:     store,
		normalize: func(w *domain.Workout) { w.Normalize() },
	}
}

// Load reads the slot and decodes the collection. Every failure mode degrades
// to an empty collection: absent slot, unavailable storage, storage read
// error, unparseable payload. Elements that fail to decode or lack a
// non-empty id are dropped individually; the rest of the collection survives.
func (a *Adapter[T]) Load(ctx context.Context) []T {
	if !a.store.Available(ctx) {
		logrus.Debugf("durable storage unavailable, loading %s as empty", a.entity)
		return []T{}
	}

	payload, found, err := a.store.GetItem(ctx, a.key)
	if err != nil {
		logrus.Errorf("failed to read %s slot: %s", a.entity, err)
		return []T{}
	}
	if !found {
		return []T{}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		// Treat an unparseable payload as "no data"; the next successful
		// persist overwrites it.
		logrus.Errorf("discarding unparseable %s payload: %s", a.entity, err)
		return []T{}
	}

	// Elements decode individually; one odd element must not take the rest
	// of the collection with it.
	items := make([]T, 0, len(elements))
	for _, element := range elements {
		var decoded T
		if err := json.Unmarshal(element, &decoded); err != nil {
			logrus.Errorf("dropping undecodable %s element: %s", a.entity, err)
			continue
		}
		if decoded.EntityID() == "" {
			continue
		}
		if a.normalize != nil {
			a.normalize(&decoded)
		}
		items = append(items, decoded)
	}
	return items
}

// Persist serializes the whole collection and overwrites the slot with a
// single write. With storage unavailable it is a warn-and-skip no-op, not a
// failure.
func (a *Adapter[T]) Persist(ctx context.Context, items []T) error {
	if !a.store.Available(ctx) {
		logrus.Warnf("durable storage unavailable, skipping persist of %s", a.entity)
		return nil
	}

	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return &MirrorError{Entity: a.entity, Op: "persist", Err: err}
	}
	if err := a.store.SetItem(ctx, a.key, string(payload)); err != nil {
		return &MirrorError{Entity: a.entity, Op: "persist", Err: err}
	}
	return nil
}

// Clear removes the slot entirely.
func (a *Adapter[T]) Clear(ctx context.Context) error {
	if !a.store.Available(ctx) {
		logrus.Warnf("durable storage unavailable, skipping clear of %s", a.entity)
		return nil
	}

	if err := a.store.RemoveItem(ctx, a.key); err != nil {
		return &MirrorError{Entity: a.entity, Op: "clear", Err: err}
	}
	return nil
}
