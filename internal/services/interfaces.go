package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// UserService defines the interface for identity and profile business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) // Returns user, access token, refresh token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, userID string) error

	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateSkills(ctx context.Context, req *dto.UpdateSkillsRequest) (*models.User, error)
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for the application workflow and
// the employer-side applicant review.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListApplicantsByJob(ctx context.Context, req *dto.ListApplicantsRequest) ([]*models.Application, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]*models.Application, error)
	SetApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}
