package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendly/pricetrack/internal/auth/domain"
	"github.com/trendly/pricetrack/internal/auth/infrastructure/persistence/memory"
	"github.com/trendly/pricetrack/pkg/auth"
)

func newTestAuth(t *testing.T) (*AuthCommandService, *AuthQueryService, *auth.TokenManager) {
	t.Helper()
	users := memory.NewUserRepository()
	sessions := memory.NewSessionRepository()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthCommandService(users, sessions, tokens, nil),
		NewAuthQueryService(users, sessions),
		tokens
}

func TestRegisterAndLogin(t *testing.T) {
	cmd, query, tokens := newTestAuth(t)
	ctx := context.Background()

	result, err := cmd.Register(ctx, RegisterCommand{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", result.User.Name)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, "hunter22", result.User.PasswordHash)

	claims, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.Sub)
	assert.Equal(t, "alice@example.com", claims.Email)

	login, err := cmd.Login(ctx, LoginCommand{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)

	session, err := query.GetSession(ctx, login.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, result.User.ID, session.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	cmd, _, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := cmd.Register(ctx, RegisterCommand{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = cmd.Register(ctx, RegisterCommand{Email: "bob@example.com", Password: "another"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterDefaultsNameFromEmail(t *testing.T) {
	cmd, _, _ := newTestAuth(t)

	result, err := cmd.Register(context.Background(), RegisterCommand{Email: "carol@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "carol", result.User.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	cmd, _, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := cmd.Register(ctx, RegisterCommand{Email: "dave@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "dave@example.com", "battery-staple"},
		{"unknown email", "nobody@example.com", "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.Login(ctx, LoginCommand{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogoutRemovesSession(t *testing.T) {
	cmd, query, _ := newTestAuth(t)
	ctx := context.Background()

	result, err := cmd.Register(ctx, RegisterCommand{Email: "erin@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, cmd.Logout(ctx, result.Token))

	session, err := query.GetSession(ctx, result.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
