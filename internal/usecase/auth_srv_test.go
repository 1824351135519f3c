package usecase

import (
	"context"
	"testing"

	"warehouse-api/internal/dto/request"
	"warehouse-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_LoginHappyPath(t *testing.T) {
	repo := newTestRepository()
	publisher := newFakePublisher()
	config := testConfig()
	users := NewUserService(repo, newFakeBlobStore(), publisher, config, zap.NewNop())
	auth := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	register(t, users)
	event := awaitEvent(t, publisher)

	_, err := users.Verify(ctx, &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           event.Token,
	})
	require.NoError(t, err)

	resp, err := auth.Login(ctx, &request.LoginRequest{
		Email:    "budi@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "budi@example.com", resp.User.Email)

	claims, err := utils.ParseAccessToken(config.JWT, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims.Role)
}

func TestAuthService_LoginRejections(t *testing.T) {
	repo := newTestRepository()
	publisher := newFakePublisher()
	config := testConfig()
	users := NewUserService(repo, newFakeBlobStore(), publisher, config, zap.NewNop())
	auth := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	register(t, users)
	event := awaitEvent(t, publisher)

	// Unverified account cannot log in, even before a password exists.
	_, err := auth.Login(ctx, &request.LoginRequest{Email: "budi@example.com", Password: "anything"})
	assert.Equal(t, utils.KindUnauthorized, utils.AsAppError(err).Kind)

	_, err = users.Verify(ctx, &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           event.Token,
	})
	require.NoError(t, err)

	// Wrong password and unknown email get the same answer.
	_, err = auth.Login(ctx, &request.LoginRequest{Email: "budi@example.com", Password: "Wr0ng!pass"})
	assert.Equal(t, utils.KindUnauthorized, utils.AsAppError(err).Kind)

	_, err = auth.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "Str0ng!pass"})
	assert.Equal(t, utils.KindUnauthorized, utils.AsAppError(err).Kind)
}
