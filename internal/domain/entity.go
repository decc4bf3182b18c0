package domain

// EntityID accessors let the persistence layer filter decoded elements by id
// without knowing the concrete entity type.

func (p WorkoutPlan) EntityID() string { return p.ID }
func (s Schedule) EntityID() string    { return s.ID }
func (w Workout) EntityID() string     { return w.ID }
