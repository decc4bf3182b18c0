package api

import (
	"net/http"
	"time"

	"reptrack/reptrack/internal/domain"
	"reptrack/reptrack/internal/session"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes the logged-session history: logging finished
// sessions, editing and deleting them, and the derived progress views.
type WorkoutHandler struct {
	workouts *store.WorkoutStore
}

func NewWorkoutHandler(workouts *store.WorkoutStore) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// --- DTOs ---

// LogWorkoutRequest records a finished session. Times are epoch millis, the
// way the session clock captured them.
type LogWorkoutRequest struct {
	PlanID    *string                  `json:"planId"`
	StartTime int64                    `json:"startTime" binding:"required"`
	EndTime   int64                    `json:"endTime" binding:"required"`
	Exercises []domain.WorkoutExercise `json:"exercises"`
}

type WorkoutResponse struct {
	Workout domain.Workout  `json:"workout"`
	Summary session.Summary `json:"summary"`
}

// --- Handler Methods ---

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts := h.workouts.Items()
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// LogWorkout godoc
// @Summary Log a finished workout session
// @Description Stores the session with derived duration and returns it with its summary.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body LogWorkoutRequest true "Session details"
// @Success 201 {object} WorkoutResponse "Workout logged"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout := domain.NewWorkout(
		req.PlanID,
		time.UnixMilli(req.StartTime),
		time.UnixMilli(req.EndTime),
		req.Exercises,
	)
	workout.Normalize()
	h.workouts.Add(workout)

	c.JSON(http.StatusCreated, WorkoutResponse{
		Workout: workout,
		Summary: session.Summarize(workout),
	})
}

// UpdateWorkout replaces a logged session wholesale.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workoutID := c.Param("id")
	existing, found := h.workouts.Get(workoutID)
	if !found {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated := domain.NewWorkout(
		req.PlanID,
		time.UnixMilli(req.StartTime),
		time.UnixMilli(req.EndTime),
		req.Exercises,
	)
	updated.ID = existing.ID
	updated.Normalize()
	h.workouts.Update(updated)

	c.JSON(http.StatusOK, WorkoutResponse{
		Workout: updated,
		Summary: session.Summarize(updated),
	})
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID := c.Param("id")
	if _, found := h.workouts.Get(workoutID); !found {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	h.workouts.Delete(workoutID)
	c.Status(http.StatusNoContent)
}

// ClearWorkouts empties the whole history ("clear all").
func (h *WorkoutHandler) ClearWorkouts(c *gin.Context) {
	h.workouts.Clear()
	c.Status(http.StatusNoContent)
}

// WorkoutSummary returns the recap for one logged session.
func (h *WorkoutHandler) WorkoutSummary(c *gin.Context) {
	workout, found := h.workouts.Get(c.Param("id"))
	if !found {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusOK, session.Summarize(workout))
}

// WeeklyTracker returns the seven-day activity row for the current local week.
func (h *WorkoutHandler) WeeklyTracker(c *gin.Context) {
	c.JSON(http.StatusOK, session.WeeklyTracker(time.Now(), h.workouts.Items()))
}
