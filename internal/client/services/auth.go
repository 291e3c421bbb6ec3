package services

import (
	"context"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/client/session"
)

// AuthService is the backend auth collaborator used by the session
// controller. Credentials are validated before anything is sent.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Me(ctx context.Context, token string) (*models.CurrentUser, error)
}

type authService struct {
	client client.Client
}

var _ session.Authenticator = (*authService)(nil)

func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := models.Validate(creds); err != nil {
		return nil, err
	}
	return a.client.Login(ctx, creds)
}

func (a *authService) Register(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := models.Validate(creds); err != nil {
		return nil, err
	}
	return a.client.Register(ctx, creds)
}

func (a *authService) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	return a.client.Me(ctx, token)
}
