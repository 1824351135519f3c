package usecase

import (
	"context"
	"time"

	"warehouse-api/internal/data/entity"
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/dto/response"
	"warehouse-api/internal/queue"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	VerificationStatus(ctx context.Context, email string) (bool, error)
	Verify(ctx context.Context, req *request.VerifyRequest) (string, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.ProfileUpdateRequest) (*response.UserResponse, error)
	ChangePicture(ctx context.Context, userID uuid.UUID, image *utils.ImageFile) (*response.UserResponse, error)
	RemovePicture(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context, params listquery.Params) (*response.ListResponse[response.UserResponse], error)
}

type userService struct {
	repo      *repository.Repository
	blobs     storage.BlobStore
	publisher queue.Publisher
	config    *utils.Config
	log       *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	blobs storage.BlobStore,
	publisher queue.Publisher,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:      repo,
		blobs:     blobs,
		publisher: publisher,
		config:    config,
		log:       log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError("Failed to check email", err)
	}
	if existing != nil {
		return nil, utils.NewValidationError(map[string]string{
			"email": "Email already registered",
		})
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: &req.PhoneNumber,
		Role:        entity.RoleCustomer,
		IsVerified:  false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, utils.NewInternalError("Failed to create account", err)
	}

	token, err := utils.GenerateVerifyToken(s.config.JWT, user.Email)
	if err != nil {
		s.log.Error("Failed to generate verification token",
			zap.Error(err),
			zap.String("email", user.Email),
		)
	} else {
		// Best-effort: the mailer consumes this event out of process. A
		// broker outage must not fail the registration.
		go s.publishVerification(user, token)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	resp := response.UserToResponse(user, nil)
	return &resp, nil
}

func (s *userService) publishVerification(user *entity.User, token string) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	event := queue.VerificationRequestedEvent{
		UserID:      user.ID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		Token:       token,
		RequestedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.publisher.PublishVerificationRequested(ctx, event); err != nil {
		s.log.Error("Failed to publish verification event",
			zap.Error(err),
			zap.String("email", user.Email),
		)
	}
}

func (s *userService) VerificationStatus(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return false, utils.NewInternalError("Failed to check verification status", err)
	}
	if user == nil {
		return false, utils.NewNotFoundError("User not found")
	}

	return user.IsVerified, nil
}

// Verify completes the one-time verification flow. Submitting again for an
// already-verified account is a no-op success, mirroring the client's
// "already verified" redirect.
func (s *userService) Verify(ctx context.Context, req *request.VerifyRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify validation failed", zap.Any("errors", errs))
		return "", utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.NewInternalError("Failed to find account", err)
	}
	if user == nil {
		return "", utils.NewNotFoundError("User not found")
	}

	if user.IsVerified {
		return "Account already verified", nil
	}

	if err := utils.ParseVerifyToken(s.config.JWT, req.Token, req.Email); err != nil {
		s.log.Warn("Invalid verification token",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return "", utils.NewUnauthorizedError("Invalid or expired verification token")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", utils.NewInternalError("Failed to process password", err)
	}

	updated, err := s.repo.User.Verify(ctx, user.ID, hash)
	if err != nil {
		return "", utils.NewInternalError("Failed to verify account", err)
	}
	if !updated {
		// Lost the race with a concurrent verification.
		return "Account already verified", nil
	}

	s.log.Info("User verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return "Account verified", nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.ProfileUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		return nil, utils.NewInternalError("Failed to update profile", err)
	}

	resp := response.UserToResponse(user, s.pictureURL(user))
	return &resp, nil
}

func (s *userService) ChangePicture(ctx context.Context, userID uuid.UUID, image *utils.ImageFile) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User not found")
	}

	var oldBlob string
	if user.ProfilePicture != nil {
		oldBlob = *user.ProfilePicture
	}

	newBlob := uuid.NewString() + image.Ext
	if err := s.blobs.Put(ctx, newBlob, image.Data, image.ContentType); err != nil {
		return nil, utils.NewInternalError("Failed to store profile picture", err)
	}

	if err := s.repo.User.UpdatePicture(ctx, userID, &newBlob); err != nil {
		if delErr := s.blobs.Delete(ctx, newBlob); delErr != nil {
			s.log.Error("Failed to clean up profile picture",
				zap.Error(delErr),
				zap.String("blob", newBlob),
			)
		}
		return nil, utils.NewInternalError("Failed to update profile picture", err)
	}

	if oldBlob != "" && oldBlob != newBlob {
		if err := s.blobs.Delete(ctx, oldBlob); err != nil {
			s.log.Warn("Failed to delete replaced profile picture",
				zap.Error(err),
				zap.String("blob", oldBlob),
			)
		}
	}

	user.ProfilePicture = &newBlob

	s.log.Info("Profile picture changed", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user, s.pictureURL(user))
	return &resp, nil
}

// RemovePicture is idempotent: removing an absent picture succeeds.
func (s *userService) RemovePicture(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return utils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return utils.NewNotFoundError("User not found")
	}

	if user.ProfilePicture == nil {
		return nil
	}

	blob := *user.ProfilePicture

	if err := s.repo.User.UpdatePicture(ctx, userID, nil); err != nil {
		return utils.NewInternalError("Failed to remove profile picture", err)
	}

	if err := s.blobs.Delete(ctx, blob); err != nil {
		s.log.Warn("Failed to delete removed profile picture",
			zap.Error(err),
			zap.String("blob", blob),
		)
	}

	s.log.Info("Profile picture removed", zap.String("user_id", userID.String()))
	return nil
}

func (s *userService) ListUsers(ctx context.Context, params listquery.Params) (*response.ListResponse[response.UserResponse], error) {
	users, total, err := s.repo.User.List(ctx, params)
	if err != nil {
		return nil, utils.NewInternalError("Failed to list users", err)
	}

	rows := make([]response.UserResponse, len(users))
	for i, user := range users {
		rows[i] = response.UserToResponse(user, s.pictureURL(user))
	}

	return response.NewListResponse(rows, params.Page, params.Limit(), total), nil
}

func (s *userService) pictureURL(user *entity.User) *string {
	if user.ProfilePicture == nil {
		return nil
	}
	url := s.blobs.URL(*user.ProfilePicture)
	return &url
}
