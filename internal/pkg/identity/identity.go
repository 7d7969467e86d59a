// Package identity creates and removes login identities at the identity
// provider. Profile rows in the users table point at these identities.
package identity

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrIdentityExists   = errors.New("identity already exists")
	ErrIdentityNotFound = errors.New("identity not found")
)

type Provider interface {
	// CreateUser registers email/password and returns the provider's user id
	CreateUser(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, id, password string) error
	DeleteUser(ctx context.Context, id string) error
}

// Email derives the login email of a username, e.g. alice@teamtime.local.
func Email(username, domain string) string {
	return strings.ToLower(username) + "@" + domain
}
