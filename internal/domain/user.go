package domain

import "time"

// UserRole enumerates operator account roles.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSecurity   UserRole = "seguridad"
	RoleTechnician UserRole = "tecnico"
)

// User is an operator account that logs and tracks visits.
type User struct {
	ID                 string     `json:"id"`
	Username           string     `json:"username"`
	GivenName          string     `json:"given_name"`
	FamilyName         string     `json:"family_name"`
	Email              string     `json:"email"`
	Role               UserRole   `json:"role"`
	AssignedFacilities []string   `json:"assigned_facilities"`
	Active             bool       `json:"active"`
	LastAccess         *time.Time `json:"last_access,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
