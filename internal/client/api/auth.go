package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/engajamento/engaja/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. It does not touch the
// token slot: the session store installs the token itself so the
// token-before-profile ordering stays in one place.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", fmt.Errorf("api.Login: %w", err)
	}
	return resp.AccessToken, nil
}

// Me fetches the authenticated user's own profile. Requires the bearer
// token slot to be set.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var env envelope[models.User]
	if err := c.do(ctx, http.MethodPost, "/v1/auth/me", nil, &env); err != nil {
		return nil, fmt.Errorf("api.Me: %w", err)
	}
	return &env.Data, nil
}

// UpdateMe updates the authenticated user's own profile and returns the
// stored version.
func (c *Client) UpdateMe(ctx context.Context, u *models.User) (*models.User, error) {
	var env envelope[models.User]
	if err := c.put(ctx, "/v1/auth/me", u, &env); err != nil {
		return nil, fmt.Errorf("api.UpdateMe: %w", err)
	}
	return &env.Data, nil
}
