package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo       storage.UserRepository
	tokens     storage.TokenRepository
	sessions   *SessionStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens storage.TokenRepository, sessions *SessionStore, jwtSecret string, accessTTL, refreshTTL time.Duration) UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates the identity and the profile document in one call, then
// signs the new user in.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) {
	if err := validateRoleFields(req); err != nil {
		return nil, "", "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password for email %s: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Location:     req.Location,
		Role:         req.Role,
		Skills:       req.Skills,
		Organization: req.Organization,
		Industry:     req.Industry,
		Website:      req.Website,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", "", fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("Register: Error creating user: %v", err)
		return nil, "", "", fmt.Errorf("internal error creating user: %w", err)
	}

	access, refresh, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, "", "", err
	}
	return created, access, refresh, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Refresh validates the presented refresh token against the stored one and
// rotates the pair.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	userID, err := s.parseSubject(req.RefreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	stored, err := s.tokens.GetRefreshToken(ctx, userID)
	if err != nil || stored != req.RefreshToken {
		log.Printf("Refresh: token mismatch or missing for user %s", userID)
		return "", "", ErrInvalidCredentials
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", mapRepoError(err, fmt.Sprintf("fetching user %s for refresh", userID))
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the stored refresh token and pushes a signed-out identity to
// session subscribers.
func (s *userService) Logout(ctx context.Context, userID string) error {
	if err := s.tokens.DeleteRefreshToken(ctx, userID); err != nil {
		log.Printf("Logout: Error deleting refresh token for user %s: %v", userID, err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	s.sessions.Publish(nil)
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching profile %s", userID))
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating profile %s", req.UserID))
	}
	return user, nil
}

// UpdateSkills persists a full replacement of the skills list. Fewer than
// three entries is rejected before any write, leaving the stored list intact.
func (s *userService) UpdateSkills(ctx context.Context, req *dto.UpdateSkillsRequest) (*models.User, error) {
	if len(req.Skills) < 3 {
		return nil, &FieldValidationError{Fields: map[string]string{
			"skills": "at least 3 skills are required",
		}}
	}

	user, err := s.repo.ReplaceSkills(ctx, req.UserID, req.Skills)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("replacing skills for user %s", req.UserID))
	}
	return user, nil
}

// issueTokens generates an access/refresh pair, stores the refresh token, and
// pushes the identity to session subscribers.
func (s *userService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	access, err := s.signToken(user.ID, s.accessTTL)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}
	refresh, err := s.signToken(user.ID, s.refreshTTL)
	if err != nil {
		log.Printf("Error generating refresh token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}

	if err := s.tokens.SaveRefreshToken(ctx, user.ID, refresh, s.refreshTTL); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	s.sessions.Publish(&Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	return access, refresh, nil
}

func (s *userService) signToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) parseSubject(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}

// validateRoleFields rejects signups whose role-specific fields break the
// profile invariants (a job seeker's skills list, once present, holds at
// least three entries).
func validateRoleFields(req *dto.RegisterRequest) error {
	fields := make(map[string]string)
	if req.Role == models.RoleJobSeeker && req.Skills != nil && len(req.Skills) < 3 {
		fields["skills"] = "at least 3 skills are required"
	}
	if req.Role == models.RoleEmployer && req.Organization == "" {
		fields["organization"] = "organization is required for employers"
	}
	if len(fields) > 0 {
		return &FieldValidationError{Fields: fields}
	}
	return nil
}
