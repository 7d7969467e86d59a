package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// RemoteProvider talks to a GoTrue-style admin API using the service key as
// bearer token.
type RemoteProvider struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewRemoteProvider(ctx context.Context, baseURL, serviceKey string) *RemoteProvider {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: serviceKey, TokenType: "Bearer"})
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = 15 * time.Second

	return &RemoteProvider{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: client,
	}
}

type adminUserRequest struct {
	Email        string `json:"email,omitempty"`
	Password     string `json:"password,omitempty"`
	EmailConfirm bool   `json:"email_confirm,omitempty"`
}

type adminUserResponse struct {
	ID string `json:"id"`
}

func (p *RemoteProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	body := adminUserRequest{Email: email, Password: password, EmailConfirm: true}

	var created adminUserResponse
	status, err := p.do(ctx, http.MethodPost, "/admin/users", body, &created)
	if err != nil {
		switch status {
		case http.StatusConflict, http.StatusUnprocessableEntity:
			return "", fmt.Errorf("%w: %v", ErrIdentityExists, err)
		}
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("identity provider returned no user id")
	}
	return created.ID, nil
}

func (p *RemoteProvider) UpdatePassword(ctx context.Context, id, password string) error {
	status, err := p.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), adminUserRequest{Password: password}, nil)
	if status == http.StatusNotFound {
		return ErrIdentityNotFound
	}
	return err
}

func (p *RemoteProvider) DeleteUser(ctx context.Context, id string) error {
	status, err := p.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
	if status == http.StatusNotFound {
		return ErrIdentityNotFound
	}
	return err
}

// do sends a JSON request and decodes a 2xx body into out. The HTTP status is
// returned even when err is set so callers can map it.
func (p *RemoteProvider) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", p.serviceKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("identity API error %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding identity response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
