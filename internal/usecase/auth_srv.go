package usecase

import (
	"context"

	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/dto/response"
	"warehouse-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError("Failed to find account", err)
	}

	// Same response for unknown email, unverified account and wrong
	// password, so credentials cannot be probed.
	if user == nil || !user.IsVerified || user.PasswordHash == nil {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}

	if !utils.CheckPassword(*user.PasswordHash, req.Password) {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}

	token, err := utils.GenerateAccessToken(s.config.JWT, user.ID, string(user.Role))
	if err != nil {
		return nil, utils.NewInternalError("Failed to generate token", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user, nil),
	}, nil
}
