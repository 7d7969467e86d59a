package user

import "context"

// UserService backs the admin panel and the provisioning endpoint
type UserService interface {
	// Provision creates the login identity first, then the profile row; the
	// identity is removed again when the profile cannot be stored.
	Provision(ctx context.Context, req CreateUserRequest) (ProvisionResponse, error)

	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Delete(ctx context.Context, id string, actorID string) error
}
