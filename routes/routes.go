package routes

import (
	"time"

	"crewledger/handlers"
	"crewledger/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers operator account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterOperatorHandler)
		api.POST("/login", hb.LoginOperatorHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.POST("/logout", hb.LogoutOperatorHandler)
		api.GET("/me", hb.GetOperatorHandler)
	}
}

// RegisterCrewRoutes registers crew role profile endpoints.
func RegisterCrewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/crew")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.POST("", hb.RegisterCrewHandler)
		api.GET("", hb.ListCrewHandler)
		api.GET("/:id", hb.GetCrewHandler)
		api.PUT("/:id", hb.UpdateCrewHandler)
		api.DELETE("/:id", hb.DeleteCrewHandler)
		api.GET("/:id/shifts", hb.ListCrewShifts)
		api.GET("/person/:mid", hb.GetRoleProfilesByMID)
	}
}

// RegisterProjectRoutes registers production and assignment endpoints.
func RegisterProjectRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/projects")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.POST("", hb.CreateProjectHandler)
		api.GET("", hb.ListProjectsHandler)
		api.GET("/:id", hb.GetProjectHandler)
		api.PUT("/:id", hb.UpdateProjectHandler)
		api.DELETE("/:id", hb.DeleteProjectHandler)

		api.POST("/:id/crew", hb.AssignCrewHandler)
		api.PUT("/:id/crew", hb.UpdateAssignmentHandler)
		api.DELETE("/:id/crew/:crewId", hb.UnassignCrewHandler)
		api.GET("/:id/shifts", hb.ListProjectShifts)
	}
}

// RegisterShiftRoutes registers attendance endpoints.
func RegisterShiftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shifts")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.POST("", hb.LogShiftHandler)
		api.GET("/:id", hb.GetShiftHandler)
		api.PUT("/:id", hb.UpdateShiftHandler)
		api.DELETE("/:id", hb.DeleteShiftHandler)
	}
}

// RegisterPaymentRoutes registers payment and reversal endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.POST("", hb.RecordPaymentHandler)
		api.GET("", hb.PaymentHistoryHandler)
		api.DELETE("/:id", hb.ReversePaymentHandler)
	}
}

// RegisterReportRoutes registers financial summary endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.OperatorRepo))
		api.GET("/crew/:crewId/project/:projectId", hb.CrewProjectSummaryHandler)
		api.GET("/project/:projectId", hb.ProjectSummaryHandler)
		api.GET("/project/:projectId/crew", hb.ProjectCrewBreakdownHandler)
		api.GET("/person/:mid", hb.PersonSummaryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterCrewRoutes(r, hb)
	RegisterProjectRoutes(r, hb)
	RegisterShiftRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
