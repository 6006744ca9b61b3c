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

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret  = "test-secret-key"
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// Helper to create a pointer to a string
func ptr(s string) *string { return &s }

func setupUserServiceTest(t *testing.T) (context.Context, services.UserService, *mock_storage.MockUserRepository, *mock_storage.MockTokenRepository, *services.SessionStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokenRepo := mock_storage.NewMockTokenRepository(ctrl)
	sessions := services.NewSessionStore()
	userService := services.NewUserService(mockUserRepo, mockTokenRepo, sessions, jwtSecret, accessTTL, refreshTTL)
	ctx := context.Background()
	return ctx, userService, mockUserRepo, mockTokenRepo, sessions, ctrl
}

func signTestToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return signed
}

func TestUserService_Register_JobSeekerSuccess(t *testing.T) {
	ctx, userService, mockUserRepo, mockTokenRepo, sessions, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	req := &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     models.RoleJobSeeker,
		Skills:   []string{"Go", "SQL", "Docker"},
	}

	mockUserRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, req.Email, user.Email)
			assert.Equal(t, models.RoleJobSeeker, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			created := *user
			created.ID = "seeker-1"
			return &created, nil
		}).Times(1)
	mockTokenRepo.EXPECT().SaveRefreshToken(ctx, "seeker-1", gomock.Any(), refreshTTL).Return(nil).Times(1)

	user, access, refresh, err := userService.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "seeker-1", user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	// Registration signs the user in, so the session store now carries them.
	current := sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, "seeker-1", current.UserID)
}

func TestUserService_Register_JobSeekerTooFewSkills(t *testing.T) {
	ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	req := &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     models.RoleJobSeeker,
		Skills:   []string{"Go", "SQL"},
	}

	user, _, _, err := userService.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, user)

	var fieldErr *services.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Fields, "skills")
}

func TestUserService_Register_EmployerMissingOrganization(t *testing.T) {
	ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	req := &dto.RegisterRequest{
		Name:     "Acme HR",
		Email:    "hr@acme.example",
		Password: "password123",
		Role:     models.RoleEmployer,
	}

	user, _, _, err := userService.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, user)

	var fieldErr *services.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Fields, "organization")
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	req := &dto.RegisterRequest{
		Name:         "Acme HR",
		Email:        "hr@acme.example",
		Password:     "password123",
		Role:         models.RoleEmployer,
		Organization: "Acme Corp",
	}

	mockUserRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, storage.ErrDuplicateEmail).Times(1)

	user, _, _, err := userService.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestUserService_Login_Success(t *testing.T) {
	ctx, userService, mockUserRepo, mockTokenRepo, sessions, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:           "seeker-1",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Role:         models.RoleJobSeeker,
		PasswordHash: string(hash),
	}

	mockUserRepo.EXPECT().GetByEmail(ctx, stored.Email).Return(stored, nil).Times(1)
	mockTokenRepo.EXPECT().SaveRefreshToken(ctx, stored.ID, gomock.Any(), refreshTTL).Return(nil).Times(1)

	user, access, refresh, err := userService.Login(ctx, &dto.LoginRequest{Email: stored.Email, Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	require.NotNil(t, sessions.Current())
	assert.Equal(t, stored.ID, sessions.Current().UserID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{ID: "seeker-1", Email: "jane@example.com", PasswordHash: string(hash)}
	mockUserRepo.EXPECT().GetByEmail(ctx, stored.Email).Return(stored, nil).Times(1)

	user, _, _, err := userService.Login(ctx, &dto.LoginRequest{Email: stored.Email, Password: "wrong-password"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, storage.ErrNotFound).Times(1)

	user, _, _, err := userService.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Refresh_RotatesPair(t *testing.T) {
	ctx, userService, mockUserRepo, mockTokenRepo, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	stored := &models.User{ID: "seeker-1", Email: "jane@example.com", Role: models.RoleJobSeeker}
	oldRefresh := signTestToken(t, stored.ID, refreshTTL)

	mockTokenRepo.EXPECT().GetRefreshToken(ctx, stored.ID).Return(oldRefresh, nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Times(1)
	mockTokenRepo.EXPECT().SaveRefreshToken(ctx, stored.ID, gomock.Any(), refreshTTL).Return(nil).Times(1)

	access, refresh, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: oldRefresh})

	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestUserService_Refresh_MismatchedStoredToken(t *testing.T) {
	ctx, userService, _, mockTokenRepo, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	presented := signTestToken(t, "seeker-1", refreshTTL)
	mockTokenRepo.EXPECT().GetRefreshToken(ctx, "seeker-1").Return("some-other-token", nil).Times(1)

	_, _, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: presented})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Refresh_GarbageToken(t *testing.T) {
	ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	_, _, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: "not-a-jwt"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Logout_RevokesTokenAndClearsSession(t *testing.T) {
	ctx, userService, _, mockTokenRepo, sessions, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	sessions.Publish(&services.Identity{UserID: "seeker-1"})
	mockTokenRepo.EXPECT().DeleteRefreshToken(ctx, "seeker-1").Return(nil).Times(1)

	err := userService.Logout(ctx, "seeker-1")

	require.NoError(t, err)
	assert.Nil(t, sessions.Current())
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	req := &dto.UpdateProfileRequest{UserID: "seeker-1", Location: ptr("Berlin")}
	updated := &models.User{ID: "seeker-1", Location: "Berlin"}

	mockUserRepo.EXPECT().UpdateProfile(ctx, req).Return(updated, nil).Times(1)

	user, err := userService.UpdateProfile(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Berlin", user.Location)
}

func TestUserService_UpdateSkills_Success(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	skills := []string{"Go", "SQL", "Docker", "Kubernetes"}
	updated := &models.User{ID: "seeker-1", Skills: skills}

	mockUserRepo.EXPECT().ReplaceSkills(ctx, "seeker-1", skills).Return(updated, nil).Times(1)

	user, err := userService.UpdateSkills(ctx, &dto.UpdateSkillsRequest{UserID: "seeker-1", Skills: skills})

	require.NoError(t, err)
	assert.Equal(t, skills, user.Skills)
}

// A replacement below the minimum is rejected before any write, so the stored
// list stays as it was.
func TestUserService_UpdateSkills_TooFewRejectedBeforeWrite(t *testing.T) {
	ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	user, err := userService.UpdateSkills(ctx, &dto.UpdateSkillsRequest{UserID: "seeker-1", Skills: []string{"Go", "SQL"}})

	require.Error(t, err)
	assert.Nil(t, user)

	var fieldErr *services.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Fields, "skills")
}
