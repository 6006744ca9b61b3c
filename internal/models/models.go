package models

import (
	"fmt"
	"time"
)

// AnonymousUserID is the sentinel recorded on applications submitted without a
// signed-in identity.
const AnonymousUserID = "anonymous"

// --- User Role Enum ---
type UserRole string

const (
	RoleJobSeeker UserRole = "JobSeeker"
	RoleEmployer  UserRole = "Employer"
)

// Validate checks that the role is one of the known values.
func (r UserRole) Validate() error {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return nil
	default:
		return fmt.Errorf("invalid UserRole value: %s", string(r))
	}
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "FullTime"
	JobTypePartTime   JobType = "PartTime"
	JobTypeInternship JobType = "Internship"
)

// Validate checks that the job type is one of the known values.
func (t JobType) Validate() error {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship:
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", string(t))
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// Validate checks that the status is one of the known values.
func (s ApplicationStatus) Validate() error {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected:
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", string(s))
	}
}

// User is a per-user document in the users collection. The document ID is the
// opaque identity key; it is not stored as a field.
type User struct {
	ID string `json:"id" firestore:"-"`

	Name     string   `json:"name" firestore:"name"`
	Email    string   `json:"email" firestore:"email"`
	Location string   `json:"location,omitempty" firestore:"location"`
	Role     UserRole `json:"role" firestore:"role"`

	// Job seeker only. Once set, the profile flow never lets it drop below
	// three entries.
	Skills []string `json:"skills,omitempty" firestore:"skills"`

	// Employer only.
	Organization string `json:"organization,omitempty" firestore:"organization"`
	Industry     string `json:"industry,omitempty" firestore:"industry"`
	Website      string `json:"website,omitempty" firestore:"website"`

	// Denormalized back-reference: job IDs this user applied to.
	Applications []string `json:"applications,omitempty" firestore:"applications"`

	PasswordHash string    `json:"-" firestore:"passwordHash"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}

// Job is a posting document in the jobs collection.
type Job struct {
	ID string `json:"id" firestore:"-"`

	Title       string `json:"title" firestore:"title"`
	Company     string `json:"company" firestore:"company"`
	Location    string `json:"location" firestore:"location"`
	Description string `json:"description" firestore:"description"`

	Skills           []string `json:"skills" firestore:"skills"`
	Experience       int      `json:"experience" firestore:"experience"` // years
	JobType          JobType  `json:"job_type" firestore:"jobType"`
	Salary           *float64 `json:"salary,omitempty" firestore:"salary"`
	Responsibilities []string `json:"responsibilities" firestore:"responsibilities"`
	Requirements     []string `json:"requirements" firestore:"requirements"`

	PostedBy  string    `json:"posted_by" firestore:"postedBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	// Denormalized back-reference: user IDs that applied to this job.
	Applicants []string `json:"applicants" firestore:"applicants"`
}

// HasApplicant reports whether the given user already appears in the job's
// denormalized applicant list.
func (j *Job) HasApplicant(userID string) bool {
	for _, id := range j.Applicants {
		if id == userID {
			return true
		}
	}
	return false
}

// Application is a single submission by a user against one job posting.
type Application struct {
	ID string `json:"id" firestore:"-"`

	JobID  string `json:"job_id" firestore:"jobId"`
	UserID string `json:"user_id" firestore:"userId"` // AnonymousUserID if unauthenticated

	Name        string `json:"name" firestore:"name"`
	Email       string `json:"email" firestore:"email"`
	Phone       string `json:"phone" firestore:"phone"`
	ResumeLink  string `json:"resume_link" firestore:"resumeLink"`
	CoverLetter string `json:"cover_letter,omitempty" firestore:"coverLetter"`
	Experience  string `json:"experience" firestore:"experience"`

	AppliedAt time.Time         `json:"applied_at" firestore:"appliedAt"`
	Status    ApplicationStatus `json:"status" firestore:"status"`
}
