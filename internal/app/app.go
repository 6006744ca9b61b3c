// internal/app/app.go
package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/services"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Firestore   *firestore.Client
	Storage     *storage.Client
	RedisClient *redis.Client
	Validator   *validator.Validate
	Sessions    *services.SessionStore
}
