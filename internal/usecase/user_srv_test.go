package usecase

import (
	"context"
	"testing"
	"time"

	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/queue"
	"warehouse-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:            "test-secret",
			ExpiryHours:       1,
			VerifyExpiryHours: 1,
		},
		Upload: utils.UploadConfig{MaxBytes: 5000000},
	}
}

func newUserServiceForTest(t *testing.T) (UserService, *fakePublisher, *fakeBlobStore) {
	t.Helper()

	repo := newTestRepository()
	blobs := newFakeBlobStore()
	publisher := newFakePublisher()
	svc := NewUserService(repo, blobs, publisher, testConfig(), zap.NewNop())
	return svc, publisher, blobs
}

func register(t *testing.T, svc UserService) {
	t.Helper()

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "081234567890",
	})
	require.NoError(t, err)
}

func awaitEvent(t *testing.T, publisher *fakePublisher) queue.VerificationRequestedEvent {
	t.Helper()

	select {
	case event := <-publisher.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("verification event was not published")
		return queue.VerificationRequestedEvent{}
	}
}

func TestUserService_RegisterPublishesVerificationEvent(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)

	created, err := svc.Register(context.Background(), &request.RegisterRequest{
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "081234567890",
	})
	require.NoError(t, err)
	assert.False(t, created.IsVerified)

	event := awaitEvent(t, publisher)
	assert.Equal(t, "budi@example.com", event.Email)
	assert.NotEmpty(t, event.Token)
	assert.Equal(t, created.ID, event.UserID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	awaitEvent(t, publisher)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FullName:    "Budi Kedua",
		Email:       "budi@example.com",
		PhoneNumber: "081234567891",
	})

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Equal(t, "Email already registered", appErr.Fields["email"])
}

func TestUserService_VerifyFlow(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	event := awaitEvent(t, publisher)

	ctx := context.Background()

	verified, err := svc.VerificationStatus(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, verified)

	msg, err := svc.Verify(ctx, &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           event.Token,
	})
	require.NoError(t, err)
	assert.Equal(t, "Account verified", msg)

	verified, err = svc.VerificationStatus(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, verified)

	// A second submit is a no-op success, not an error.
	msg, err = svc.Verify(ctx, &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           event.Token,
	})
	require.NoError(t, err)
	assert.Equal(t, "Account already verified", msg)
}

func TestUserService_VerifyBadToken(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	awaitEvent(t, publisher)

	_, err := svc.Verify(context.Background(), &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           "not-a-real-token",
	})

	assert.Equal(t, utils.KindUnauthorized, utils.AsAppError(err).Kind)
}

func TestUserService_VerifyTokenForOtherEmailRejected(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	awaitEvent(t, publisher)

	otherToken, err := utils.GenerateVerifyToken(testConfig().JWT, "siti@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Token:           otherToken,
	})

	assert.Equal(t, utils.KindUnauthorized, utils.AsAppError(err).Kind)
}

func TestUserService_VerifyWeakPasswordRejected(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	event := awaitEvent(t, publisher)

	_, err := svc.Verify(context.Background(), &request.VerifyRequest{
		Email:           "budi@example.com",
		Password:        "weakpass",
		ConfirmPassword: "weakpass",
		Token:           event.Token,
	})

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "Password")
}

func TestUserService_VerificationStatusUnknownEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.VerificationStatus(context.Background(), "nobody@example.com")
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}

func TestUserService_PictureLifecycle(t *testing.T) {
	repo := newTestRepository()
	blobs := newFakeBlobStore()
	publisher := newFakePublisher()
	svc := NewUserService(repo, blobs, publisher, testConfig(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.Register(ctx, &request.RegisterRequest{
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "081234567890",
	})
	require.NoError(t, err)
	awaitEvent(t, publisher)
	userID := uuid.MustParse(created.ID)

	// Removing before any picture exists is fine.
	require.NoError(t, svc.RemovePicture(ctx, userID))

	withPic, err := svc.ChangePicture(ctx, userID, &utils.ImageFile{
		Data: []byte{0x89, 'P', 'N', 'G'}, Filename: "me.png", ContentType: "image/png", Ext: ".png",
	})
	require.NoError(t, err)
	require.NotNil(t, withPic.ProfilePictureURL)
	assert.Len(t, blobs.blobs, 1)

	// Replacing deletes the old blob.
	replaced, err := svc.ChangePicture(ctx, userID, &utils.ImageFile{
		Data: []byte{0xff, 0xd8, 0xff}, Filename: "me.jpg", ContentType: "image/jpeg", Ext: ".jpg",
	})
	require.NoError(t, err)
	assert.NotEqual(t, *withPic.ProfilePictureURL, *replaced.ProfilePictureURL)
	assert.Len(t, blobs.blobs, 1)

	require.NoError(t, svc.RemovePicture(ctx, userID))
	assert.Empty(t, blobs.blobs)

	// Idempotent: a second remove still succeeds.
	require.NoError(t, svc.RemovePicture(ctx, userID))
}

func TestUserService_UpdateProfileMergesFields(t *testing.T) {
	svc, publisher, _ := newUserServiceForTest(t)
	register(t, svc)
	event := awaitEvent(t, publisher)

	name := "Budi S."
	updated, err := svc.UpdateProfile(context.Background(), uuid.MustParse(event.UserID), &request.ProfileUpdateRequest{
		FullName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", updated.FullName)
	// Email never changes through the profile endpoint.
	assert.Equal(t, "budi@example.com", updated.Email)
}
