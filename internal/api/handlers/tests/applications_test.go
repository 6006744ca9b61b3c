package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if app, ok := args.Get(0).(*models.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationService) ListApplicantsByJob(ctx context.Context, req *dto.ListApplicantsRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if apps, ok := args.Get(0).([]*models.Application); ok {
		return apps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	args := m.Called(ctx, userID)
	if apps, ok := args.Get(0).([]*models.Application); ok {
		return apps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationService) SetApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if app, ok := args.Get(0).(*models.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

// Ensure MockApplicationService implements the interface (compile-time check)
var _ services.ApplicationService = (*MockApplicationService)(nil)

func setupApplyRouter(svc services.ApplicationService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewApplicationHandler(svc, validator.New())
	router.POST("/api/v1/jobs/:id/apply", func(c *gin.Context) {
		c.Set("userID", userID)
	}, handler.Apply)
	return router
}

func applyBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "5551234567",
		"resume_link": "https://storage.googleapis.com/resumes/jane.pdf",
		"experience":  "4 years of backend work",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestApplicationHandler_Apply_Created(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "seeker-1")

	created := &models.Application{ID: "application-1", JobID: "job-1", UserID: "seeker-1", Status: models.StatusPending}
	mockSvc.On("Apply", mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
		return req.JobID == "job-1" && req.UserID == "seeker-1"
	})).Return(created, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ApplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AlreadyApplied)
	require.NotNil(t, resp.Application)
	assert.Equal(t, "application-1", resp.Application.ID)
	assert.Equal(t, models.StatusPending, resp.Application.Status)

	mockSvc.AssertExpectations(t)
}

// A repeat submission is not an error to the client: 200 with the
// already-applied flag, no application in the payload.
func TestApplicationHandler_Apply_AlreadyAppliedIsOK(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "seeker-1")

	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrAlreadyApplied).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyApplied)
	assert.Nil(t, resp.Application)

	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_EmployerForbidden(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "employer-1")

	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_JobNotFound(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "seeker-1")

	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/missing/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_FieldErrorsReturned(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "seeker-1")

	fieldErr := &services.FieldValidationError{Fields: map[string]string{"email": "invalid email address"}}
	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, fieldErr).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	details, ok := resp["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "email")

	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_SubmissionFailure(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplyRouter(mockSvc, "seeker-1")

	wrapped := errors.New("deadline exceeded")
	mockSvc.On("Apply", mock.Anything, mock.Anything).
		Return(nil, errors.Join(services.ErrSubmission, wrapped)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/apply", applyBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	mockSvc.AssertExpectations(t)
}
