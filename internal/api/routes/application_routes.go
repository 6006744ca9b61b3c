// internal/api/routes/application_routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers routes for the employer-side review of
// submitted applications.
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler *handlers.ApplicationHandler, authMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.PATCH("/:id/status", applicationHandler.SetStatus)
	}
}
