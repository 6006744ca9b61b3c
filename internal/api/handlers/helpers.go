package handlers

import (
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must have at least %s entries or characters", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		}
	}
	return errorsMap
}

// MapUserToResponse converts a models.User to a dto.UserResponse
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Location:     user.Location,
		Role:         user.Role,
		Skills:       user.Skills,
		Organization: user.Organization,
		Industry:     user.Industry,
		Website:      user.Website,
		Applications: user.Applications,
		CreatedAt:    user.CreatedAt,
	}
}

// MapJobToResponse converts a models.Job to a dto.JobResponse
func MapJobToResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		Description:      job.Description,
		Skills:           job.Skills,
		Experience:       job.Experience,
		JobType:          job.JobType,
		Salary:           job.Salary,
		Responsibilities: job.Responsibilities,
		Requirements:     job.Requirements,
		PostedBy:         job.PostedBy,
		CreatedAt:        job.CreatedAt,
		Applicants:       job.Applicants,
	}
}

// MapApplicationToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		UserID:      app.UserID,
		Name:        app.Name,
		Email:       app.Email,
		Phone:       app.Phone,
		ResumeLink:  app.ResumeLink,
		CoverLetter: app.CoverLetter,
		Experience:  app.Experience,
		AppliedAt:   app.AppliedAt,
		Status:      app.Status,
	}
}
