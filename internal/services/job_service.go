package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type jobService struct {
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, userRepo storage.UserRepository) JobService {
	return &jobService{jobRepo: jobRepo, userRepo: userRepo}
}

// CreateJob validates the posting and stores it with an empty applicant list.
// Only employers may post.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	poster, err := s.userRepo.GetByID(ctx, req.PostedBy)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching poster %s", req.PostedBy))
	}
	if err := authorize(poster, actionPostJob, nil); err != nil {
		log.Printf("CreateJob: Forbidden attempt by user %s (role %s)", poster.ID, poster.Role)
		return nil, err
	}

	if err := validateJobFields(req); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Description:      req.Description,
		Skills:           req.Skills,
		Experience:       req.Experience,
		JobType:          req.JobType,
		Salary:           req.Salary,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		PostedBy:         req.PostedBy,
		CreatedAt:        time.Now().UTC(),
		Applicants:       []string{},
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("CreateJob: Error creating job in repo: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return created, nil
}

// ListJobs returns the full result set, optionally filtered by poster. No
// pagination is applied; acceptable only at small scale.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, req.PostedBy)
	if err != nil {
		log.Printf("ListJobs: Error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

// DeleteJob removes a posting. Permitted only for the owner. Applications
// referencing the job are left behind as orphans; there is no cascade.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s for deletion", req.ID))
	}

	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching requester %s", req.RequesterID))
	}
	if err := authorize(requester, actionDeleteJob, job); err != nil {
		log.Printf("DeleteJob: Forbidden attempt by user %s on job %s owned by %s", req.RequesterID, job.ID, job.PostedBy)
		return err
	}

	if err := s.jobRepo.Delete(ctx, req.ID); err != nil {
		log.Printf("DeleteJob: Error deleting job %s: %v", req.ID, err)
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}

	log.Printf("Job %s deleted by owner %s", req.ID, req.RequesterID)
	return nil
}

// validateJobFields checks the posting-level requirements: non-empty text
// fields, at least one skill, responsibility and requirement, a known job
// type, and non-negative experience.
func validateJobFields(req *dto.CreateJobRequest) error {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(req.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(req.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "description is required"
	}
	if len(req.Skills) == 0 {
		fields["skills"] = "at least one skill is required"
	}
	if len(req.Responsibilities) == 0 {
		fields["responsibilities"] = "at least one responsibility is required"
	}
	if len(req.Requirements) == 0 {
		fields["requirements"] = "at least one requirement is required"
	}
	if req.Experience < 0 {
		fields["experience"] = "experience must be a non-negative number of years"
	}
	if err := req.JobType.Validate(); err != nil {
		fields["job_type"] = "job type must be FullTime, PartTime or Internship"
	}
	if len(fields) > 0 {
		return &FieldValidationError{Fields: fields}
	}
	return nil
}
