package services

import (
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
)

// action names a guarded operation for authorize.
type action string

const (
	actionPostJob          action = "job.post"
	actionDeleteJob        action = "job.delete"
	actionApply            action = "job.apply"
	actionReviewApplicants action = "job.review"
)

// authorize is the single role/ownership check point for every guarded
// operation. Call sites never test roles or ownership directly; scattering
// those checks is how the applicant listing shipped without one.
func authorize(actor *models.User, act action, job *models.Job) error {
	if actor == nil {
		return fmt.Errorf("%w: no authenticated user", ErrForbidden)
	}
	switch act {
	case actionPostJob:
		if actor.Role != models.RoleEmployer {
			return fmt.Errorf("%w: only employers can post jobs", ErrForbidden)
		}
	case actionApply:
		if actor.Role == models.RoleEmployer {
			return fmt.Errorf("%w: employers cannot apply", ErrForbidden)
		}
	case actionDeleteJob, actionReviewApplicants:
		if job == nil || actor.ID != job.PostedBy {
			return fmt.Errorf("%w: user %s does not own this job", ErrForbidden, actor.ID)
		}
	default:
		return fmt.Errorf("%w: unknown action %s", ErrForbidden, act)
	}
	return nil
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
