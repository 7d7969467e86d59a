package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	CountByRole(ctx context.Context, role Role) (int, error)
	Delete(ctx context.Context, id string) error
}
