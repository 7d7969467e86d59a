package auth

import "github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

// MeResponse describes the session owner
type MeResponse struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	ProjectKey  *string  `json:"project_key,omitempty"`
	Permissions []string `json:"permissions"`
}

// SessionTrackingRequest is stored with the refresh token for the admin panel
type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

// LogoutRequest carries both tokens of the session being closed.
// The access token comes from the Authorization header, the refresh token from
// the body or the refresh_token cookie.
type LogoutRequest struct {
	AccessToken          string `json:"-"`
	AccessTokenExpiresAt int64  `json:"-"`
	RefreshToken         string `json:"refresh_token"`
}
