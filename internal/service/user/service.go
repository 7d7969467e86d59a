package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/identity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	tx          database.Transactor
	userRepo    user.UserRepository
	projectRepo project.ProjectRepository
	tokenRepo   auth.RefreshTokenRepository
	identity    identity.Provider
	emailDomain string
}

func NewUserService(
	tx database.Transactor,
	userRepo user.UserRepository,
	projectRepo project.ProjectRepository,
	tokenRepo auth.RefreshTokenRepository,
	identityProvider identity.Provider,
	emailDomain string,
) user.UserService {
	return &userServiceImpl{
		tx:          tx,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		tokenRepo:   tokenRepo,
		identity:    identityProvider,
		emailDomain: emailDomain,
	}
}

func (s *userServiceImpl) checkProjectKey(ctx context.Context, key *string) error {
	if key == nil || *key == "" {
		return nil
	}
	if _, err := s.projectRepo.GetByKey(ctx, *key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrProjectKeyNotFound
		}
		return fmt.Errorf("failed to check project key: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Provision implements user.UserService.
func (s *userServiceImpl) Provision(ctx context.Context, req user.CreateUserRequest) (user.ProvisionResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProvisionResponse{}, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.ProvisionResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.ProvisionResponse{}, user.ErrUsernameExists
	}

	if err := s.checkProjectKey(ctx, req.ProjectKey); err != nil {
		return user.ProvisionResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.ProvisionResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	authUserID, err := s.identity.CreateUser(ctx, identity.Email(req.Username, s.emailDomain), req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrIdentityExists) {
			return user.ProvisionResponse{}, user.ErrUsernameExists
		}
		return user.ProvisionResponse{}, fmt.Errorf("%w: %v", user.ErrIdentityProvisionFailed, err)
	}

	projectKey := req.ProjectKey
	if projectKey != nil && *projectKey == "" {
		projectKey = nil
	}

	created, err := s.userRepo.Create(ctx, user.User{
		AuthUserID:   &authUserID,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		ProjectKey:   projectKey,
	})
	if err != nil {
		// The identity is useless without a profile row
		if delErr := s.identity.DeleteUser(ctx, authUserID); delErr != nil {
			slog.Error("failed to roll back identity after profile insert failure",
				"auth_user_id", authUserID, "error", delErr)
		}
		if isUniqueViolation(err) {
			return user.ProvisionResponse{}, user.ErrUsernameExists
		}
		return user.ProvisionResponse{}, fmt.Errorf("failed to create user profile: %w", err)
	}

	slog.Info("user provisioned", "user_id", created.ID, "username", created.Username, "role", created.Role)
	return user.ProvisionResponse{ID: created.ID, AuthUserID: authUserID}, nil
}

// List implements user.UserService.
func (s *userServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *userServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// Update implements user.UserService.
func (s *userServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.checkProjectKey(ctx, req.ProjectKey); err != nil {
		return user.UserResponse{}, err
	}

	var updated user.User
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return err
		}

		if current.IsAdmin() && req.Role != nil && user.Role(*req.Role) != user.RoleAdmin {
			if err := s.ensureAnotherAdmin(txCtx); err != nil {
				return err
			}
		}

		updated, err = s.userRepo.Update(txCtx, req)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		// Old tokens carry the old role; force a fresh login
		if req.Role != nil && user.Role(*req.Role) != current.Role {
			if err := s.tokenRepo.RevokeAllForUser(txCtx, req.ID); err != nil {
				return fmt.Errorf("failed to revoke sessions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(updated), nil
}

func (s *userServiceImpl) ensureAnotherAdmin(ctx context.Context) error {
	admins, err := s.userRepo.CountByRole(ctx, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return user.ErrLastAdmin
	}
	return nil
}

// ResetPassword implements user.UserService.
func (s *userServiceImpl) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		target, err := s.userRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return err
		}

		if err := s.userRepo.UpdatePassword(txCtx, target.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := s.tokenRepo.RevokeAllForUser(txCtx, target.ID); err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}

		if target.AuthUserID != nil {
			if err := s.identity.UpdatePassword(txCtx, *target.AuthUserID, req.Password); err != nil {
				return fmt.Errorf("failed to update identity password: %w", err)
			}
		}
		return nil
	})
}

// Delete implements user.UserService.
func (s *userServiceImpl) Delete(ctx context.Context, id string, actorID string) error {
	if id == actorID {
		return user.ErrCannotDeleteSelf
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		target, err := s.userRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return err
		}

		if target.IsAdmin() {
			if err := s.ensureAnotherAdmin(txCtx); err != nil {
				return err
			}
		}

		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		// Removing the identity last lets the profile delete roll back if it fails
		if target.AuthUserID != nil {
			err := s.identity.DeleteUser(txCtx, *target.AuthUserID)
			if err != nil && !errors.Is(err, identity.ErrIdentityNotFound) {
				return fmt.Errorf("failed to delete identity: %w", err)
			}
		}

		slog.Info("user deleted", "user_id", id, "deleted_by", actorID)
		return nil
	})
}
