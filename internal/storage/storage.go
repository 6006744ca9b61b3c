package storage

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// UserRepository defines the interface for user document operations.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	// ReplaceSkills persists a full replacement of the skills list, not a merge.
	ReplaceSkills(ctx context.Context, userID string, skills []string) (*models.User, error)
	// AppendApplication adds a job ID to the user's denormalized application
	// list with set-union semantics.
	AppendApplication(ctx context.Context, userID, jobID string) error
}

// JobRepository defines the interface for job posting operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	// List returns every job, optionally filtered by poster. No pagination.
	List(ctx context.Context, postedBy string) ([]*models.Job, error)
	Delete(ctx context.Context, id string) error
	// AppendApplicant adds a user ID to the job's denormalized applicant list
	// with set-union semantics.
	AppendApplicant(ctx context.Context, jobID, userID string) error
}

// ApplicationRepository defines the interface for application submissions.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Application, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

// TokenRepository defines the interface for the refresh-token store.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
}
