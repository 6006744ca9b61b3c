// internal/api/routes/user_routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to accounts and profiles
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for the authenticated user's own resources (e.g., /api/v1/users/me)
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetProfile)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.PUT("/me/skills", userHandler.UpdateSkills)
		users.GET("/me/applications", userHandler.ListMyApplications)
	}

	// --- Authentication Routes ---
	// Create a sub-group for authentication (e.g., /api/v1/auth)
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.Refresh)
		auth.POST("/logout", authMiddleware, userHandler.Logout)
	}
}
