package service

import (
	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/store"
)

// --- Validation result values ---

// ValidationIssue identifies one reason a plan cannot be saved. Validation
// failures are values the caller branches on, not errors: they are the only
// failures a user is expected to see.
type ValidationIssue string

const (
	IssueMissingName   ValidationIssue = "missing_name"
	IssueNoExercises   ValidationIssue = "no_exercises"
	IssueBadTargetSets ValidationIssue = "bad_target_sets" // some exercise has targetSets < 1
)

// SaveResult is the discriminated outcome of a save or update attempt.
type SaveResult struct {
	Plan   *domain.WorkoutPlan
	Issues []ValidationIssue
}

// OK reports whether the plan passed validation and was applied.
func (r SaveResult) OK() bool { return len(r.Issues) == 0 }

// --- Service Interface ---

type PlanService interface {
	// SavePlan validates and stores a new plan (most-recent-first).
	SavePlan(name string, exercises []domain.PlanExercise) SaveResult
	// UpdatePlan validates and replaces an existing plan wholesale.
	UpdatePlan(plan domain.WorkoutPlan) SaveResult
	// DeletePlan removes the plan and nulls every schedule slot that
	// references it. Logged workouts keep their plan reference.
	DeletePlan(id string)
}

// --- Service Implementation ---

type planService struct {
	plans     *store.PlanStore
	schedules *store.ScheduleStore
}

func NewPlanService(plans *store.PlanStore, schedules *store.ScheduleStore) PlanService {
	return &planService{
		plans:     plans,
		schedules: schedules,
	}
}

func (s *planService) SavePlan(name string, exercises []domain.PlanExercise) SaveResult {
	if issues := validatePlan(name, exercises); len(issues) > 0 {
		return SaveResult{Issues: issues}
	}
	plan := domain.NewWorkoutPlan(name, exercises)
	s.plans.Add(plan)
	return SaveResult{Plan: &plan}
}

func (s *planService) UpdatePlan(plan domain.WorkoutPlan) SaveResult {
	if issues := validatePlan(plan.Name, plan.Exercises); len(issues) > 0 {
		return SaveResult{Issues: issues}
	}
	s.plans.Update(plan)
	return SaveResult{Plan: &plan}
}

func (s *planService) DeletePlan(id string) {
	s.plans.Delete(id)
	s.schedules.ClearPlanRefs(id)
}

// validatePlan enforces the save-time invariants: a display name and at
// least one exercise with a sane set target. The entity itself does not
// enforce these.
func validatePlan(name string, exercises []domain.PlanExercise) []ValidationIssue {
	var issues []ValidationIssue
	if name == "" {
		issues = append(issues, IssueMissingName)
	}
	if len(exercises) == 0 {
		issues = append(issues, IssueNoExercises)
	}
	for _, ex := range exercises {
		if ex.TargetSets < 1 {
			issues = append(issues, IssueBadTargetSets)
			break
		}
	}
	return issues
}
