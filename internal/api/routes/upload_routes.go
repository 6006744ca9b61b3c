// internal/api/routes/upload_routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes registers routes for resume uploads.
func RegisterUploadRoutes(rg *gin.RouterGroup, uploadHandler *handlers.UploadHandler, authMiddleware gin.HandlerFunc) {
	uploadsGroup := rg.Group("/uploads")
	uploadsGroup.Use(authMiddleware)
	{
		uploadsGroup.POST("/resume", uploadHandler.UploadResume)
	}
}
