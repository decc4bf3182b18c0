package api

import (
	"net/http"
	"time"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/service"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanHandler exposes workout plan CRUD on top of the plan service and store.
type PlanHandler struct {
	planService service.PlanService
	plans       *store.PlanStore
}

func NewPlanHandler(planService service.PlanService, plans *store.PlanStore) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		plans:       plans,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

type PlanExerciseRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	TargetSets int    `json:"targetSets"`
}

// SavePlanRequest defines the expected JSON for creating or updating a plan.
type SavePlanRequest struct {
	Name      string                `json:"name"`
	Exercises []PlanExerciseRequest `json:"exercises"`
}

type PlanResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Exercises []domain.PlanExercise `json:"exercises"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ValidationFailedResponse carries the validation issues back to the caller,
// which branches on them for user-visible feedback.
type ValidationFailedResponse struct {
	Issues []service.ValidationIssue `json:"issues"`
}

func MapPlanToResponse(plan *domain.WorkoutPlan) PlanResponse {
	if plan == nil {
		return PlanResponse{}
	}
	return PlanResponse{
		ID:        plan.ID,
		Name:      plan.Name,
		Exercises: plan.Exercises,
		CreatedAt: plan.CreatedAt,
	}
}

func MapPlansToResponse(plans []domain.WorkoutPlan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = MapPlanToResponse(&plan)
	}
	return responses
}

func mapPlanExercises(reqs []PlanExerciseRequest) []domain.PlanExercise {
	exercises := make([]domain.PlanExercise, len(reqs))
	for i, req := range reqs {
		id := req.ID
		if id == "" {
			id = uuid.NewString()
		}
		exercises[i] = domain.PlanExercise{
			ID:         id,
			Name:       req.Name,
			TargetSets: req.TargetSets,
		}
	}
	return exercises
}

// --- Handler Methods ---

// ListPlans godoc
// @Summary List workout plans
// @Description Returns the in-memory plan collection, most recent first.
// @Tags Plans
// @Produce json
// @Success 200 {array} PlanResponse "List of plans"
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, MapPlansToResponse(h.plans.Items()))
}

// CreatePlan saves a new plan. Validation failures come back as a 422 with
// the issue list, not as an opaque error.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result := h.planService.SavePlan(req.Name, mapPlanExercises(req.Exercises))
	if !result.OK() {
		c.JSON(http.StatusUnprocessableEntity, ValidationFailedResponse{Issues: result.Issues})
		return
	}

	c.JSON(http.StatusCreated, MapPlanToResponse(result.Plan))
}

// UpdatePlan replaces an existing plan wholesale; there is no partial edit.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID := c.Param("id")
	existing, found := h.plans.Get(planID)
	if !found {
		abortWithError(c, http.StatusNotFound, "Plan not found.")
		return
	}

	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated := domain.WorkoutPlan{
		ID:        existing.ID,
		Name:      req.Name,
		Exercises: mapPlanExercises(req.Exercises),
		CreatedAt: existing.CreatedAt,
	}
	result := h.planService.UpdatePlan(updated)
	if !result.OK() {
		c.JSON(http.StatusUnprocessableEntity, ValidationFailedResponse{Issues: result.Issues})
		return
	}

	c.JSON(http.StatusOK, MapPlanToResponse(result.Plan))
}

// DeletePlan removes the plan and nulls referencing schedule slots.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("id")
	if _, found := h.plans.Get(planID); !found {
		abortWithError(c, http.StatusNotFound, "Plan not found.")
		return
	}
	h.planService.DeletePlan(planID)
	c.Status(http.StatusNoContent)
}
