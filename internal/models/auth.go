package models

import "github.com/golang-jwt/jwt/v5"

// UserRole distinguishes the two assessment actors.
type UserRole string

const (
	// RoleOrganization is a direct organization user, pinned to its own
	// organization id.
	RoleOrganization UserRole = "organization"
	// RoleConsultant runs assessments on behalf of client organizations.
	RoleConsultant UserRole = "consultant"
)

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID         string   `json:"user_id"`
	Role           UserRole `json:"role"`
	OrganizationID string   `json:"organization_id"`
	jwt.RegisteredClaims
}
