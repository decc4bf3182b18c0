package api

import (
	"net/http"

	"reptrack/reptrack/internal/catalog"
	"reptrack/reptrack/internal/service"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
)

// Stores bundles the entity stores handed to the route setup.
type Stores struct {
	Plans     *store.PlanStore
	Schedules *store.ScheduleStore
	Workouts  *store.WorkoutStore
}

func SetupRoutes(
	router *gin.Engine,
	authEnabled bool,
	authService service.AuthService,
	planService service.PlanService,
	stores Stores,
	exercises []catalog.Exercise,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService, stores.Plans)
	scheduleHandler := NewScheduleHandler(stores.Schedules, stores.Plans)
	workoutHandler := NewWorkoutHandler(stores.Workouts)
	catalogHandler := NewCatalogHandler(exercises)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/otp", authHandler.RequestOTP)
			authGroup.POST("/verify", authHandler.VerifyOTP)
			authGroup.POST("/signout", authHandler.SignOut)
		}
	}

	// Cloud auth is optional: without it the app is a purely local tracker
	// and every route is open; with it, state routes require a session.
	protected := apiV1.Group("")
	if authEnabled {
		protected.Use(AuthMiddleware(authService.GetJWTSecret()))
		protected.GET("/me", authHandler.Me)
	}
	{
		planGroup := protected.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.PUT("/:id", planHandler.UpdatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
		}

		scheduleGroup := protected.Group("/schedules")
		{
			scheduleGroup.GET("", scheduleHandler.ListSchedules)
			scheduleGroup.POST("", scheduleHandler.CreateSchedule)
			scheduleGroup.PUT("/:id", scheduleHandler.UpdateSchedule)
			scheduleGroup.DELETE("/:id", scheduleHandler.DeleteSchedule)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.DELETE("", workoutHandler.ClearWorkouts)
			workoutGroup.GET("/:id/summary", workoutHandler.WorkoutSummary)
			workoutGroup.GET("/week", workoutHandler.WeeklyTracker)
		}

		protected.GET("/catalog/search", catalogHandler.SearchCatalog)
	}
}
