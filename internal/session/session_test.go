package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvault/recipevault/internal/accounts"
	"github.com/rvault/recipevault/internal/common"
	"github.com/rvault/recipevault/internal/config"
	"github.com/rvault/recipevault/internal/gateway"
	"github.com/rvault/recipevault/internal/logging"
	"github.com/rvault/recipevault/internal/password"
	"github.com/rvault/recipevault/internal/recipes"
	"github.com/rvault/recipevault/internal/token"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 7 * 24 * time.Hour,
	}
	g := gateway.NewGateway(
		accounts.NewService(accounts.NewMemoryRepository(), password.NewArgon2()),
		recipes.NewMemoryRepository(),
		token.NewService([]byte(cfg.SecretKey)),
		cfg,
		logging.NewZerologWriterLogger(io.Discard),
	)
	return NewSession(g)
}

func TestSession_RegisterLogsIn(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	ctx := context.Background()

	require.False(t, s.LoggedIn())
	require.NoError(t, s.Register(ctx, "alice@example.com", []byte("secret1")))
	assert.True(t, s.LoggedIn())

	got, err := s.Recipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSession_RecipesRequireLogin(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	_, err := s.Recipes(context.Background())
	assert.ErrorIs(t, err, common.ErrMissingAccessToken)

	_, err = s.AddRecipe(context.Background(), "pancakes")
	assert.ErrorIs(t, err, common.ErrMissingAccessToken)
}

func TestSession_LoginFailureLeavesSessionLoggedOut(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "a@b.com", []byte("pw")))
	s.Logout()

	err := s.Login(ctx, "a@b.com", []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrWrongPassword)
	assert.False(t, s.LoggedIn())
}

func TestSession_AddAndListRecipes(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "a@b.com", []byte("pw")))

	created, err := s.AddRecipe(ctx, "hot dog de chocolate")
	require.NoError(t, err)

	got, err := s.Recipes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
	assert.Equal(t, "hot dog de chocolate", got[0].Name)
}

func TestSession_LogoutDropsTokens(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "a@b.com", []byte("pw")))
	s.Logout()

	assert.False(t, s.LoggedIn())
	_, err := s.Recipes(ctx)
	assert.ErrorIs(t, err, common.ErrMissingAccessToken)
}
