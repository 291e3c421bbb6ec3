package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register never yields an admin identity, whatever the server sends.
func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", creds, &out); err != nil {
		return nil, err
	}
	out.IsAdmin = false
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	var out models.CurrentUser
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	var out models.Profile
	if err := c.doJSON(ctx, http.MethodGet, idPath("/profile/%d", userID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Follow(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	var out models.Profile
	if err := c.doJSON(ctx, http.MethodPost, idPath("/users/%d/follow", userID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Unfollow(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	var out models.Profile
	if err := c.doJSON(ctx, http.MethodPost, idPath("/users/%d/unfollow", userID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
