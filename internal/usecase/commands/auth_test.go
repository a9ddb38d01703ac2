//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/pkg/jwt"
	"cafe-reservation/internal/pkg/password"
	"cafe-reservation/internal/usecase/commands"
	"cafe-reservation/internal/usecase/queries"
	queriesmock "cafe-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)

	const plainPassword = "password123"
	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	activeUser := func() *queries.UserView {
		return &queries.UserView{
			ID:       uuid.New(),
			Email:    "customer@example.com",
			Role:     "customer",
			IsActive: true,
		}
	}

	newMockStore := func(t *testing.T) *queriesmock.MockUserReadStore {
		return queriesmock.NewMockUserReadStore(gomock.NewController(t))
	}

	t.Run("returns a verifiable token on success", func(t *testing.T) {
		store := newMockStore(t)
		view := activeUser()
		store.EXPECT().FindByEmail(ctx, view.Email).Return(view, hash, nil)

		auth := commands.NewAuthCommands(store, jwtService)
		result, err := auth.Login(ctx, commands.LoginInput{Email: view.Email, Password: plainPassword})
		require.NoError(t, err)
		require.Equal(t, view.ID, result.UserID)
		require.Equal(t, "customer", result.Role)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		require.Equal(t, view.ID, claims.UserID)
		require.Equal(t, "customer", claims.Role)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		store := newMockStore(t)
		view := activeUser()
		store.EXPECT().FindByEmail(ctx, view.Email).Return(view, hash, nil)

		auth := commands.NewAuthCommands(store, jwtService)
		_, err := auth.Login(ctx, commands.LoginInput{Email: view.Email, Password: "wrong-password"})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email yields user not found", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().FindByEmail(ctx, "nobody@example.com").
			Return(nil, "", infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		auth := commands.NewAuthCommands(store, jwtService)
		_, err := auth.Login(ctx, commands.LoginInput{Email: "nobody@example.com", Password: plainPassword})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("store failures are indistinguishable from bad credentials", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().FindByEmail(ctx, "anyone@example.com").
			Return(nil, "", errors.New("connection refused"))

		auth := commands.NewAuthCommands(store, jwtService)
		_, err := auth.Login(ctx, commands.LoginInput{Email: "anyone@example.com", Password: plainPassword})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		store := newMockStore(t)
		view := activeUser()
		view.IsActive = false
		store.EXPECT().FindByEmail(ctx, view.Email).Return(view, hash, nil)

		auth := commands.NewAuthCommands(store, jwtService)
		_, err := auth.Login(ctx, commands.LoginInput{Email: view.Email, Password: plainPassword})
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
