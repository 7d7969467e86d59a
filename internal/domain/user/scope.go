package user

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

var ErrMissingClaims = errors.New("user claims not found in token")

// Scope is the caller as described by the access token.
type Scope struct {
	UserID     string
	Username   string
	Role       Role
	ProjectKey string
}

// ScopeFromContext reads the verified JWT claims placed on ctx by jwtauth.Verifier.
func ScopeFromContext(ctx context.Context) (Scope, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Scope{}, errors.Join(ErrMissingClaims, err)
	}
	return ScopeFromClaims(claims)
}

func ScopeFromClaims(claims map[string]interface{}) (Scope, error) {
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || !Role(role).IsValid() {
		return Scope{}, ErrMissingClaims
	}

	s := Scope{UserID: userID, Role: Role(role)}
	s.Username, _ = claims["username"].(string)
	s.ProjectKey, _ = claims["project_key"].(string)
	return s, nil
}

// Restricted reports whether the caller only sees a single project.
func (s Scope) Restricted() bool {
	if s.Role == RoleAdmin {
		return false
	}
	return s.Role == RoleUser || s.ProjectKey != ""
}

// CanSeeProject reports whether a project with the given key is visible.
func (s Scope) CanSeeProject(key string) bool {
	return !s.Restricted() || (s.ProjectKey != "" && s.ProjectKey == key)
}

func (s Scope) Can(p Permission) bool {
	return HasPermission(s.Role, p)
}
