// internal/api/routes/job_routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings. Browsing is
// open to everyone; posting, deleting, applying and reviewing applicants
// require authentication.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/", jobHandler.ListJobs)      // List all jobs, optionally filtered by poster
		jobs.GET("/:id", jobHandler.GetJobByID) // Get a specific job by ID

		jobs.POST("/", authMiddleware, jobHandler.CreateJob)
		jobs.DELETE("/:id", authMiddleware, jobHandler.DeleteJob)
		jobs.POST("/:id/apply", authMiddleware, applicationHandler.Apply)
		jobs.GET("/:id/applicants", authMiddleware, applicationHandler.ListApplicants)
	}
}
