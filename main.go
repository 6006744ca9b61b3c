// main.go

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/database"
	"jobboard-api/internal/server"
	"jobboard-api/internal/services"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Initialize Firestore Client ---
	firestoreClient, err := database.NewFirestoreClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// --- Initialize Cloud Storage Client ---
	storageClient, err := database.NewStorageClient(ctx)
	if err != nil {
		log.Fatalf("Failed to create Cloud Storage client: %v", err)
	}
	defer storageClient.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		Firestore:   firestoreClient,
		Storage:     storageClient,
		RedisClient: redisClient,
		Validator:   validate,
		Sessions:    services.NewSessionStore(),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
