package domain

import "github.com/google/uuid"

// Weekday keys for schedule slots. Serialized as lowercase day names.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists all seven keys in calendar order (Sunday first).
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Schedule maps each weekday to an optional plan id. The plan id is a weak
// reference: it carries no ownership and may stop resolving if the plan is
// deleted (the plan store nulls referencing slots on delete, see cascade).
type Schedule struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Weekdays map[Weekday]*string `json:"weekdays"`
}

// NewSchedule creates a schedule with all seven weekday slots present and empty.
func NewSchedule(name string) Schedule {
	s := Schedule{
		ID:       uuid.NewString(),
		Name:     name,
		Weekdays: make(map[Weekday]*string, 7),
	}
	for _, d := range Weekdays() {
		s.Weekdays[d] = nil
	}
	return s
}

// NormalizeWeekdays guarantees every weekday key exists, so callers can index
// the map without nil checks after hydration.
func (s *Schedule) NormalizeWeekdays() {
	if s.Weekdays == nil {
		s.Weekdays = make(map[Weekday]*string, 7)
	}
	for _, d := range Weekdays() {
		if _, ok := s.Weekdays[d]; !ok {
			s.Weekdays[d] = nil
		}
	}
}

// References reports whether any weekday slot points at the given plan id.
func (s *Schedule) References(planID string) bool {
	for _, ref := range s.Weekdays {
		if ref != nil && *ref == planID {
			return true
		}
	}
	return false
}
