// Package services contains the application services of the admin CLI: one
// authentication service and one collection service per managed resource.
// Each collection service is a thin, typed binding of the REST endpoints
// the dashboard consumes; screen controllers plug their methods in as
// list/create/update/delete operations.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/session"
)

// AuthService logs the administrator in and out.
//
// Contract:
//   - Login: exchange credentials for a bearer token and persist it.
//   - Logout: clear the persisted session wholesale.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout() error
}

type authService struct {
	api   *api.Client
	store *session.Store
}

func NewAuthService(api *api.Client, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	req := loginRequest{Email: email, Password: password}
	if err := a.api.PostPublicJSON(ctx, "/auth/login", req, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.store.Save(resp.Token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (a *authService) Logout() error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
