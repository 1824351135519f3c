package wire

import (
	"warehouse-api/internal/adaptor"
	"warehouse-api/pkg/middleware"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/user/register", userHandler.Register)
	r.Get("/api/user/verify/{email}", userHandler.VerificationStatus)
	// Verification itself is gated by the emailed token, not by a session
	r.Patch("/api/user/verify", userHandler.Verify)

	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Patch("/api/user/profile", userHandler.UpdateProfile)
		r.Patch("/api/user/profile/picture", userHandler.ChangePicture)
		r.Delete("/api/user/profile/picture", userHandler.RemovePicture)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/user/listuser", userHandler.ListUsers)
	})
}
