// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"jobboard-api/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for posting a new job.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`

	Skills           []string       `json:"skills" validate:"required,min=1,dive,required"`
	Experience       int            `json:"experience" validate:"gte=0"` // years, non-negative
	JobType          models.JobType `json:"job_type" validate:"required,oneof=FullTime PartTime Internship"`
	Salary           *float64       `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Responsibilities []string       `json:"responsibilities" validate:"required,min=1,dive,required"`
	Requirements     []string       `json:"requirements" validate:"required,min=1,dive,required"`

	PostedBy string `json:"-"` // Set internally by handler from auth context
}

// ListJobsRequest defines query parameters for listing jobs.
// The full result set is returned each call; there is no pagination.
type ListJobsRequest struct {
	PostedBy string `form:"posted_by"`
}

// GetJobByIDRequest defines the structure for fetching one job.
type GetJobByIDRequest struct {
	ID string `json:"-" validate:"required"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID          string `json:"-" validate:"required"`
	RequesterID string `json:"-" validate:"required"` // Set internally by handler
}

// --- Job Response DTOs ---

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Company          string         `json:"company"`
	Location         string         `json:"location"`
	Description      string         `json:"description"`
	Skills           []string       `json:"skills"`
	Experience       int            `json:"experience"`
	JobType          models.JobType `json:"job_type"`
	Salary           *float64       `json:"salary,omitempty"`
	Responsibilities []string       `json:"responsibilities"`
	Requirements     []string       `json:"requirements"`
	PostedBy         string         `json:"posted_by"`
	CreatedAt        time.Time      `json:"created_at"`
	Applicants       []string       `json:"applicants"`
}
