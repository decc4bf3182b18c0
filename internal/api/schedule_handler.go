package api

import (
	"net/http"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes weekly schedule CRUD.
type ScheduleHandler struct {
	schedules *store.ScheduleStore
	plans     *store.PlanStore
}

func NewScheduleHandler(schedules *store.ScheduleStore, plans *store.PlanStore) *ScheduleHandler {
	return &ScheduleHandler{
		schedules: schedules,
		plans:     plans,
	}
}

// --- DTOs ---

// SaveScheduleRequest assigns an optional plan id to each weekday. Missing
// weekday keys mean "no plan that day".
type SaveScheduleRequest struct {
	Name     string                     `json:"name" binding:"required"`
	Weekdays map[domain.Weekday]*string `json:"weekdays"`
}

func (r *SaveScheduleRequest) toSchedule(id string) (domain.Schedule, bool) {
	schedule := domain.Schedule{
		ID:       id,
		Name:     r.Name,
		Weekdays: make(map[domain.Weekday]*string, 7),
	}
	valid := make(map[domain.Weekday]bool, 7)
	for _, day := range domain.Weekdays() {
		valid[day] = true
		schedule.Weekdays[day] = nil
	}
	for day, planID := range r.Weekdays {
		if !valid[day] {
			return domain.Schedule{}, false
		}
		schedule.Weekdays[day] = planID
	}
	return schedule, true
}

// --- Handler Methods ---

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules := h.schedules.Items()
	if schedules == nil {
		schedules = []domain.Schedule{}
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	schedule, ok := req.toSchedule(domain.NewSchedule(req.Name).ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Unknown weekday key.")
		return
	}
	if !h.plansResolve(schedule) {
		abortWithError(c, http.StatusUnprocessableEntity, "Schedule references an unknown plan.")
		return
	}

	h.schedules.Add(schedule)
	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	scheduleID := c.Param("id")
	if _, found := h.schedules.Get(scheduleID); !found {
		abortWithError(c, http.StatusNotFound, "Schedule not found.")
		return
	}

	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	schedule, ok := req.toSchedule(scheduleID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Unknown weekday key.")
		return
	}
	if !h.plansResolve(schedule) {
		abortWithError(c, http.StatusUnprocessableEntity, "Schedule references an unknown plan.")
		return
	}

	h.schedules.Update(schedule)
	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	scheduleID := c.Param("id")
	if _, found := h.schedules.Get(scheduleID); !found {
		abortWithError(c, http.StatusNotFound, "Schedule not found.")
		return
	}
	h.schedules.Delete(scheduleID)
	c.Status(http.StatusNoContent)
}

// plansResolve checks every non-null weekday reference against the plan
// store at save time. Referential integrity is otherwise maintained only by
// cascade-on-delete; this keeps obviously dangling references out.
func (h *ScheduleHandler) plansResolve(schedule domain.Schedule) bool {
	for _, planID := range schedule.Weekdays {
		if planID == nil {
			continue
		}
		if _, found := h.plans.Get(*planID); !found {
			return false
		}
	}
	return true
}
