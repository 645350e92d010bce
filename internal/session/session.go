// Package session is the client-side counterpart of the gateway: it builds
// request payloads, holds the issued token pair, and presents plain
// email/password operations to the UI layer.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rvault/recipevault/internal/common"
	"github.com/rvault/recipevault/internal/gateway"
	"github.com/rvault/recipevault/internal/recipes"
)

// Session tracks the credentials issued by a Gateway. The tokens are opaque
// here: the session never inspects them, only stores and presents them.
type Session struct {
	gateway      *gateway.Gateway
	accessToken  string
	refreshToken string
}

// NewSession returns a Session bound to the given gateway, not logged in.
func NewSession(g *gateway.Gateway) *Session {
	return &Session{gateway: g}
}

// LoggedIn reports whether the session holds an access token.
func (s *Session) LoggedIn() bool {
	return s.accessToken != ""
}

// Login authenticates and stores the issued token pair.
func (s *Session) Login(ctx context.Context, email string, password []byte) error {
	payload, err := json.Marshal(gateway.AccountCommand{Email: email, Password: string(password)})
	if err != nil {
		return fmt.Errorf("encoding login payload: %w", err)
	}

	creds, err := s.gateway.Login(ctx, gateway.MethodPost, payload)
	if err != nil {
		return err
	}

	s.accessToken = creds.AccessToken
	s.refreshToken = creds.RefreshToken
	return nil
}

// Register creates an account and, on success, logs in with the same
// credentials so the session is immediately usable.
func (s *Session) Register(ctx context.Context, email string, password []byte) error {
	payload, err := json.Marshal(gateway.AccountCommand{Email: email, Password: string(password)})
	if err != nil {
		return fmt.Errorf("encoding register payload: %w", err)
	}

	if _, err := s.gateway.Register(ctx, gateway.MethodPost, payload); err != nil {
		return err
	}

	return s.Login(ctx, email, password)
}

// Logout drops the held tokens. Issued tokens stay valid until they expire;
// there is no server-side revocation.
func (s *Session) Logout() {
	s.accessToken = ""
	s.refreshToken = ""
}

// Recipes lists the recipes owned by the logged-in account.
func (s *Session) Recipes(ctx context.Context) ([]*recipes.Recipe, error) {
	if !s.LoggedIn() {
		return nil, common.ErrMissingAccessToken
	}
	return s.gateway.Recipes(ctx, s.accessToken)
}

// AddRecipe stores a recipe owned by the logged-in account.
func (s *Session) AddRecipe(ctx context.Context, name string) (*recipes.Recipe, error) {
	if !s.LoggedIn() {
		return nil, common.ErrMissingAccessToken
	}
	return s.gateway.AddRecipe(ctx, gateway.MethodPost, s.accessToken, name)
}
