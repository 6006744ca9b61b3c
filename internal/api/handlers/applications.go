// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds dependencies for the application workflow and the
// employer-side review.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply submits an application to the job in the URL path. A requester who
// already applied gets a 200 with the already-applied flag set rather than an
// error status.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Apply: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = c.Param("id")
	req.UserID = userID

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		var fieldErr *services.FieldValidationError
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusOK, dto.ApplyResponse{AlreadyApplied: true})
		case errors.As(err, &fieldErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErr.Fields})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Employers cannot apply for jobs"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, services.ErrSubmission):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your application. Try again later."})
		default:
			log.Printf("Apply: Error submitting application for job %s: %v", req.JobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	resp := MapApplicationToResponse(app)
	c.JSON(http.StatusCreated, dto.ApplyResponse{Application: &resp})
}

// ListApplicants returns all applications for a job. Only the job's owner may
// list them.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ListApplicantsRequest{JobID: c.Param("id"), RequesterID: userID}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	apps, err := h.service.ListApplicantsByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the job's owner can view applicants"})
		} else {
			log.Printf("Error listing applicants for job %s: %v", req.JobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applicants"})
		}
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapApplicationToResponse(app))
	}
	c.JSON(http.StatusOK, responses)
}

// SetStatus transitions an application to Shortlisted or Rejected.
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	if _, err := middleware.GetUserIDFromContext(c); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	updated, err := h.service.SetApplicationStatus(c.Request.Context(), &req)
	if err != nil {
		var fieldErr *services.FieldValidationError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErr.Fields})
		} else if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error updating status for application %s: %v", req.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(updated))
}
