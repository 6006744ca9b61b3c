// internal/transport/dto/user_dto.go
package dto

import (
	"time"

	"jobboard-api/internal/models"
)

// --- User Request DTOs ---

// RegisterRequest defines the structure for signing up a new user. Skills apply
// to job seekers; organization, industry and website apply to employers.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,oneof=JobSeeker Employer"`
	Location string          `json:"location,omitempty"`

	Skills []string `json:"skills,omitempty" validate:"omitempty,min=3,dive,required"`

	Organization string `json:"organization,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
}

// LoginRequest defines the structure for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the structure for rotating a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest defines the structure for partial profile updates.
type UpdateProfileRequest struct {
	UserID       string  `json:"-" validate:"required"` // Set internally by handler from auth context
	Name         *string `json:"name,omitempty"`
	Location     *string `json:"location,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateSkillsRequest defines the structure for replacing the skills list.
// A job seeker's list must never drop below three entries.
type UpdateSkillsRequest struct {
	UserID string   `json:"-" validate:"required"` // Set internally by handler
	Skills []string `json:"skills" validate:"required,min=3,dive,required"`
}

// --- User Response DTOs ---

// UserResponse defines the profile data returned to the client.
type UserResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Location     string          `json:"location,omitempty"`
	Role         models.UserRole `json:"role"`
	Skills       []string        `json:"skills,omitempty"`
	Organization string          `json:"organization,omitempty"`
	Industry     string          `json:"industry,omitempty"`
	Website      string          `json:"website,omitempty"`
	Applications []string        `json:"applications,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AuthResponse bundles the signed-in user with their token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenPairResponse is returned by the refresh endpoint.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
