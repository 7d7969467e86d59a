package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already taken")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own account")
	ErrLastAdmin               = errors.New("cannot remove the last admin")
	ErrIdentityProvisionFailed = errors.New("failed to create login identity")
	ErrProjectKeyNotFound      = errors.New("project key does not exist")
)
