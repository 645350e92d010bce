// Package gateway orchestrates the externally visible authentication
// protocol: register, login, and protected recipe access. It aggregates the
// account service, the recipe repository, and the token service; callers
// (the client Session, a future transport layer) only ever go through it.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rvault/recipevault/internal/accounts"
	"github.com/rvault/recipevault/internal/common"
	"github.com/rvault/recipevault/internal/config"
	"github.com/rvault/recipevault/internal/logging"
	"github.com/rvault/recipevault/internal/recipes"
	"github.com/rvault/recipevault/internal/token"
)

// Gateway handles authentication requests. Every operation is a single
// attempt; retry policy belongs to the caller.
type Gateway struct {
	accounts         *accounts.Service
	recipes          recipes.Repository
	tokens           *token.Service
	accessTTL        time.Duration
	refreshTTL       time.Duration
	validateEmail    FieldValidator
	validatePassword FieldValidator
	logger           logging.Logger
}

// Option adjusts optional Gateway behavior.
type Option func(*Gateway)

// WithEmailValidator replaces the default (non-empty) email format check.
func WithEmailValidator(v FieldValidator) Option {
	return func(g *Gateway) { g.validateEmail = v }
}

// WithPasswordValidator replaces the default (non-empty) password format check.
func WithPasswordValidator(v FieldValidator) Option {
	return func(g *Gateway) { g.validatePassword = v }
}

// NewGateway constructs a Gateway using the given services and config.
func NewGateway(as *accounts.Service, rr recipes.Repository, ts *token.Service, cfg *config.Config, logger logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		accounts:         as,
		recipes:          rr,
		tokens:           ts,
		accessTTL:        cfg.AccessTokenValidityDuration,
		refreshTTL:       cfg.RefreshTokenValidityDuration,
		validateEmail:    NonEmptyEmail,
		validatePassword: NonEmptyPassword,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register creates a new account from a JSON payload {"email","password"}.
// Only POST is accepted. Field formats are checked before the store is
// touched.
func (g *Gateway) Register(ctx context.Context, method Method, payload []byte) (*accounts.Account, error) {
	if method != MethodPost {
		return nil, common.ErrUnsupportedMethod
	}

	var command AccountCommand
	if err := json.Unmarshal(payload, &command); err != nil {
		return nil, fmt.Errorf("decoding register payload: %w", err)
	}

	if err := g.validateEmail(command.Email); err != nil {
		return nil, err
	}
	if err := g.validatePassword(command.Password); err != nil {
		return nil, err
	}

	account, err := g.accounts.Register(ctx, command.Email, []byte(command.Password))
	if err != nil {
		g.logger.Warn(ctx, "registration rejected", "email", command.Email, "reason", err.Error())
		return nil, err
	}

	g.logger.Info(ctx, "account registered", "account_id", account.ID.String())
	return account, nil
}

// Login verifies credentials from a JSON payload {"email","password"} and,
// on success, issues an access/refresh token pair for the account. Only POST
// is accepted.
func (g *Gateway) Login(ctx context.Context, method Method, payload []byte) (*Credentials, error) {
	if method != MethodPost {
		return nil, common.ErrUnsupportedMethod
	}

	var command AccountCommand
	if err := json.Unmarshal(payload, &command); err != nil {
		return nil, fmt.Errorf("decoding login payload: %w", err)
	}

	account, err := g.accounts.VerifyCredentials(ctx, command.Email, []byte(command.Password))
	if err != nil {
		g.logger.Warn(ctx, "login rejected", "email", command.Email, "reason", err.Error())
		return nil, err
	}

	accessToken, err := g.tokens.Issue(account.ID, g.accessTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshToken, err := g.tokens.Issue(account.ID, g.refreshTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}

	g.logger.Info(ctx, "login succeeded", "account_id", account.ID.String())
	return &Credentials{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
	}, nil
}

// Recipes verifies the access token and returns only the recipes owned by
// the token's subject. Token failures propagate unchanged so the caller can
// distinguish an expired token from a forged one.
func (g *Gateway) Recipes(ctx context.Context, accessToken string) ([]*recipes.Recipe, error) {
	if accessToken == "" {
		return nil, common.ErrMissingAccessToken
	}

	subjectID, err := g.tokens.Verify(accessToken)
	if err != nil {
		g.logger.Warn(ctx, "recipe access rejected", "reason", err.Error())
		return nil, err
	}

	return g.recipes.ListByOwner(ctx, subjectID)
}

// AddRecipe verifies the access token and stores a recipe owned by the
// token's subject. Only POST is accepted.
func (g *Gateway) AddRecipe(ctx context.Context, method Method, accessToken string, name string) (*recipes.Recipe, error) {
	if method != MethodPost {
		return nil, common.ErrUnsupportedMethod
	}
	if accessToken == "" {
		return nil, common.ErrMissingAccessToken
	}

	subjectID, err := g.tokens.Verify(accessToken)
	if err != nil {
		return nil, err
	}

	return g.recipes.Create(ctx, &recipes.Recipe{OwnerID: subjectID, Name: name})
}
