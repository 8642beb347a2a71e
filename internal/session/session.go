package session

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile mirrors the user blob persisted next to the token.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
}

// Session is the capability object resolved once at startup. Pages gate
// on the capability methods instead of truthy token checks.
type Session struct {
	Role    Role
	Token   string
	Profile *Profile
}

func (s *Session) LoggedIn() bool { return s.Role != RoleGuest }

// CanManageListings covers the owner dashboard (equipment CRUD, incoming
// requests).
func (s *Session) CanManageListings() bool { return s.Role != RoleGuest }

func (s *Session) IsAdmin() bool { return s.Role == RoleAdmin }

// resolveRole derives the role from the token's claims. The signature is
// not verified here: the secret lives on the server, and the server
// re-authorizes every call. This only routes the UI.
func resolveRole(token string, profile *Profile) Role {
	if token == "" {
		return RoleGuest
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if role, ok := claims["role"].(string); ok && role == string(RoleAdmin) {
			return RoleAdmin
		}
	}
	if profile != nil && profile.Role == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
