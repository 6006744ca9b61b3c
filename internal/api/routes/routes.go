// internal/api/routes/routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/firestoredb"
	"jobboard-api/internal/storage/redisdb"
	"jobboard-api/internal/uploads"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := firestoredb.NewUserRepo(app.Firestore)
	jobRepo := firestoredb.NewJobRepo(app.Firestore)
	appRepo := firestoredb.NewApplicationRepo(app.Firestore)
	tokenRepo := redisdb.NewTokenRepo(app.RedisClient)

	// --- Services ---
	userService := services.NewUserService(userRepo, tokenRepo, app.Sessions,
		app.Config.JWT.Secret, app.Config.JWT.AccessExpiration, app.Config.JWT.RefreshExpiration)
	jobService := services.NewJobService(jobRepo, userRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, userRepo)
	resumeUploader := uploads.NewGCSResumeUploader(app.Storage, app.Config.GCP.ResumeBucket)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, applicationService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	uploadHandler := handlers.NewUploadHandler(resumeUploader)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterUploadRoutes(apiV1, uploadHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
