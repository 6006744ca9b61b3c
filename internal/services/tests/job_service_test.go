package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

func validCreateJobRequest(postedBy string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:            "Backend Engineer",
		Company:          "Acme Corp",
		Location:         "Remote",
		Description:      "Build and run backend services.",
		Skills:           []string{"Go", "Redis", "GCP"},
		Experience:       3,
		JobType:          models.JobTypeFullTime,
		Salary:           ptrFloat64(120000),
		Responsibilities: []string{"Own services end to end"},
		Requirements:     []string{"3+ years backend experience"},
		PostedBy:         postedBy,
	}
}

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mock_storage.MockJobRepository, *mock_storage.MockUserRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockUserRepo)
	ctx := context.Background()
	return ctx, jobService, mockJobRepo, mockUserRepo, ctrl
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	employer := &models.User{ID: "employer-1", Role: models.RoleEmployer, Organization: "Acme Corp"}
	req := validCreateJobRequest(employer.ID)

	mockUserRepo.EXPECT().GetByID(ctx, employer.ID).Return(employer, nil).Times(1)
	mockJobRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, job *models.Job) (*models.Job, error) {
			assert.Equal(t, req.Title, job.Title)
			assert.Equal(t, employer.ID, job.PostedBy)
			assert.NotNil(t, job.Applicants)
			assert.Empty(t, job.Applicants)
			created := *job
			created.ID = "job-1"
			return &created, nil
		}).Times(1)

	job, err := jobService.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, employer.ID, job.PostedBy)
	assert.Empty(t, job.Applicants)
}

func TestJobService_CreateJob_ForbiddenForJobSeeker(t *testing.T) {
	ctx, jobService, _, mockUserRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	seeker := &models.User{ID: "seeker-1", Role: models.RoleJobSeeker}
	req := validCreateJobRequest(seeker.ID)

	mockUserRepo.EXPECT().GetByID(ctx, seeker.ID).Return(seeker, nil).Times(1)

	job, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_CreateJob_MissingFields(t *testing.T) {
	ctx, jobService, _, mockUserRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	employer := &models.User{ID: "employer-1", Role: models.RoleEmployer}
	req := validCreateJobRequest(employer.ID)
	req.Title = "  "
	req.Skills = nil
	req.JobType = models.JobType("Contract")

	mockUserRepo.EXPECT().GetByID(ctx, employer.ID).Return(employer, nil).Times(1)

	job, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, services.ErrValidation))

	var fieldErr *services.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Fields, "title")
	assert.Contains(t, fieldErr.Fields, "skills")
	assert.Contains(t, fieldErr.Fields, "job_type")
}

func TestJobService_GetJobByID_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	expected := &models.Job{ID: "job-1", Title: "Backend Engineer", PostedBy: "employer-1", CreatedAt: time.Now()}
	mockJobRepo.EXPECT().GetByID(ctx, "job-1").Return(expected, nil).Times(1)

	job, err := jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: "job-1"})

	require.NoError(t, err)
	assert.Equal(t, expected, job)
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	mockJobRepo.EXPECT().GetByID(ctx, "missing").Return(nil, storage.ErrNotFound).Times(1)

	job, err := jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: "missing"})

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobService_ListJobs_All(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	expected := []*models.Job{{ID: "job-1"}, {ID: "job-2"}}
	mockJobRepo.EXPECT().List(ctx, "").Return(expected, nil).Times(1)

	jobs, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{})

	require.NoError(t, err)
	assert.Equal(t, expected, jobs)
}

func TestJobService_ListJobs_FilteredByPoster(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	expected := []*models.Job{{ID: "job-1", PostedBy: "employer-1"}}
	mockJobRepo.EXPECT().List(ctx, "employer-1").Return(expected, nil).Times(1)

	jobs, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{PostedBy: "employer-1"})

	require.NoError(t, err)
	assert.Equal(t, expected, jobs)
}

func TestJobService_DeleteJob_OwnerSuccess(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	owner := &models.User{ID: "employer-1", Role: models.RoleEmployer}
	job := &models.Job{ID: "job-1", PostedBy: owner.ID}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil).Times(1)
	mockJobRepo.EXPECT().Delete(ctx, job.ID).Return(nil).Times(1)

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: job.ID, RequesterID: owner.ID})

	require.NoError(t, err)
}

func TestJobService_DeleteJob_NonOwnerForbidden(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	other := &models.User{ID: "employer-2", Role: models.RoleEmployer}
	job := &models.Job{ID: "job-1", PostedBy: "employer-1"}

	mockJobRepo.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, other.ID).Return(other, nil).Times(1)
	// Delete must never run for a non-owner.

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: job.ID, RequesterID: other.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_DeleteJob_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	mockJobRepo.EXPECT().GetByID(ctx, "missing").Return(nil, storage.ErrNotFound).Times(1)

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: "missing", RequesterID: "employer-1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
