package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyApplied is the non-fatal idempotency signal: the requester is
	// already in the job's applicant list, so the submission is refused and
	// surfaced as an "Already Applied" state, not an error.
	ErrAlreadyApplied = errors.New("already applied to job")
	// ErrSubmission means the primary application write failed; the caller may
	// retry the whole submission.
	ErrSubmission = errors.New("application submission failed")
)

// FieldValidationError carries per-field messages for inline display. It
// matches errors.Is(err, ErrValidation).
type FieldValidationError struct {
	Fields map[string]string
}

func (e *FieldValidationError) Error() string {
	msg := "validation failed:"
	for field, detail := range e.Fields {
		msg += " " + field + ": " + detail + ";"
	}
	return msg
}

func (e *FieldValidationError) Unwrap() error { return ErrValidation }
