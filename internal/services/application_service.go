package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

type applicationService struct {
	appRepo  storage.ApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, userRepo storage.UserRepository) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// Apply runs the submission preconditions in order (role, job existence,
// duplicate check, field validation) and then performs three writes: the
// application record itself, which is fatal on failure, and the two
// denormalized back-references, which are best-effort. The duplicate check
// reads Job.applicants before writing; nothing in the store enforces
// uniqueness, so two concurrent submissions can both pass it. An accepted
// limitation, not guarded here.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	// 1. Role check: employers never appear as applicants. Skipped for the
	// anonymous sentinel, which has no profile document.
	var requester *models.User
	if req.UserID != models.AnonymousUserID {
		var err error
		requester, err = s.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return nil, mapRepoError(err, fmt.Sprintf("fetching applicant %s", req.UserID))
		}
		if err := authorize(requester, actionApply, nil); err != nil {
			log.Printf("Apply: Forbidden attempt by employer %s on job %s", req.UserID, req.JobID)
			return nil, err
		}
	}

	// 2. Target job must exist.
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 3. Duplicate check against the denormalized applicant list. Non-fatal:
	// surfaced as an "Already Applied" state, not an error toast.
	if requester != nil && job.HasApplicant(requester.ID) {
		log.Printf("Apply: User %s already applied to job %s", requester.ID, job.ID)
		return nil, ErrAlreadyApplied
	}

	// 4. Field validation, with per-field messages.
	if err := validateApplicantFields(req); err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:       job.ID,
		UserID:      req.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeLink:  req.ResumeLink,
		CoverLetter: req.CoverLetter,
		Experience:  req.Experience,
		AppliedAt:   time.Now().UTC(),
		Status:      models.StatusPending,
	}

	// Write 1: the application record. Failure here fails the submission.
	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		log.Printf("Apply: Error creating application for job %s: %v", job.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	// Writes 2 and 3: denormalized back-references, each independently
	// best-effort. A failure leaves the application record in place with a
	// missing back-reference; logged, never surfaced.
	if req.UserID != models.AnonymousUserID {
		if err := s.jobRepo.AppendApplicant(ctx, job.ID, req.UserID); err != nil {
			log.Printf("Apply: Failed to append applicant %s to job %s: %v", req.UserID, job.ID, err)
		}
		if err := s.userRepo.AppendApplication(ctx, req.UserID, job.ID); err != nil {
			log.Printf("Apply: Failed to append job %s to user %s applications: %v", job.ID, req.UserID, err)
		}
	}

	log.Printf("Application %s submitted for job %s by user %s", created.ID, job.ID, req.UserID)
	return created, nil
}

// ListApplicantsByJob returns all applications for a job. Only the job's
// owner may list them.
func (s *applicationService) ListApplicantsByJob(ctx context.Context, req *dto.ListApplicantsRequest) ([]*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applicants", req.JobID))
	}

	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching requester %s", req.RequesterID))
	}
	if err := authorize(requester, actionReviewApplicants, job); err != nil {
		log.Printf("ListApplicantsByJob: Forbidden attempt by user %s on job %s owned by %s", req.RequesterID, req.JobID, job.PostedBy)
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		log.Printf("ListApplicantsByJob: Error listing applications for job %s: %v", req.JobID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return apps, nil
}

// ListApplicationsByUser returns the requesting user's own submissions.
func (s *applicationService) ListApplicationsByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	apps, err := s.appRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("ListApplicationsByUser: Error listing applications for user %s: %v", userID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for user %s", userID))
	}
	return apps, nil
}

// SetApplicationStatus overwrites the stored status unconditionally. Setting
// the same status twice re-issues the write; the outcome is identical.
func (s *applicationService) SetApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if req.Status != models.StatusShortlisted && req.Status != models.StatusRejected {
		return nil, &FieldValidationError{Fields: map[string]string{
			"status": "status must be Shortlisted or Rejected",
		}}
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status for application %s", req.ID))
	}

	log.Printf("Application %s status set to %s", req.ID, req.Status)
	return updated, nil
}

// validateApplicantFields enforces the submission form's field rules: name,
// a plausible email, a phone with 10 to 15 digits once punctuation is
// stripped, a resume reference, and a non-empty experience statement.
func validateApplicantFields(req *dto.ApplyRequest) error {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailPattern.MatchString(req.Email) {
		fields["email"] = "invalid email address"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "phone is required"
	} else if !phonePattern.MatchString(nonDigits.ReplaceAllString(req.Phone, "")) {
		fields["phone"] = "invalid phone number"
	}
	if strings.TrimSpace(req.ResumeLink) == "" {
		fields["resume_link"] = "resume link is required"
	}
	if strings.TrimSpace(req.Experience) == "" {
		fields["experience"] = "experience is required"
	}
	if len(fields) > 0 {
		return &FieldValidationError{Fields: fields}
	}
	return nil
}
