// internal/transport/dto/application_dto.go
package dto

import (
	"time"

	"jobboard-api/internal/models"
)

// --- Application Request DTOs ---

// ApplyRequest defines the structure for submitting a job application.
// Field-level patterns (email shape, phone digit count) are enforced by the
// application service so every caller gets the same per-field messages.
type ApplyRequest struct {
	JobID  string `json:"-"` // From URL path
	UserID string `json:"-"` // From auth context; models.AnonymousUserID if absent

	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeLink  string `json:"resume_link"`
	CoverLetter string `json:"cover_letter,omitempty"`
	Experience  string `json:"experience"`
}

// ListApplicantsRequest defines the structure for the employer-side listing.
type ListApplicantsRequest struct {
	JobID       string `json:"-" validate:"required"`
	RequesterID string `json:"-" validate:"required"` // Set internally by handler
}

// UpdateApplicationStatusRequest defines the structure for a status transition.
type UpdateApplicationStatusRequest struct {
	ID     string                   `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=Shortlisted Rejected"`
}

// --- Application Response DTOs ---

// ApplicationResponse defines the application data returned to the client.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	UserID      string                   `json:"user_id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	ResumeLink  string                   `json:"resume_link"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Experience  string                   `json:"experience"`
	AppliedAt   time.Time                `json:"applied_at"`
	Status      models.ApplicationStatus `json:"status"`
}

// ApplyResponse wraps a submission result. AlreadyApplied is set when the
// requester was found in the job's applicant list; the UI renders it as an
// "Already Applied" state rather than an error.
type ApplyResponse struct {
	AlreadyApplied bool                 `json:"already_applied"`
	Application    *ApplicationResponse `json:"application,omitempty"`
}

// ResumeUploadResponse returns the durable URL of an uploaded resume.
type ResumeUploadResponse struct {
	ResumeLink string `json:"resume_link"`
}
