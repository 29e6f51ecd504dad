package dto

import (
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the operator profile.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the operator profile without internal fields.
type UserResponse struct {
	ID                 string          `json:"id"`
	Username           string          `json:"username"`
	GivenName          string          `json:"given_name"`
	FamilyName         string          `json:"family_name"`
	Email              string          `json:"email"`
	Role               domain.UserRole `json:"role"`
	AssignedFacilities []string        `json:"assigned_facilities"`
	LastAccess         *time.Time      `json:"last_access,omitempty"`
}

// FromUser builds a UserResponse.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		GivenName:          u.GivenName,
		FamilyName:         u.FamilyName,
		Email:              u.Email,
		Role:               u.Role,
		AssignedFacilities: u.AssignedFacilities,
		LastAccess:         u.LastAccess,
	}
}
