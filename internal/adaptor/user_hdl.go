package adaptor

import (
	"encoding/json"
	"net/http"

	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service  usecase.UserService
	maxBytes int64
	log      *zap.Logger
}

func NewUserHandler(service usecase.UserService, maxBytes int64, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		maxBytes: maxBytes,
		log:      log.With(zap.String("handler", "user")),
	}
}

// Register handles POST /api/user/register (public)
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "register user")
		return
	}

	utils.ResponseCreated(w, "Registration successful, please check your email to verify your account", user)
}

// VerificationStatus handles GET /api/user/verify/{email} (public)
func (h *UserHandler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	verified, err := h.service.VerificationStatus(r.Context(), email)
	if err != nil {
		respondError(w, h.log, err, "check verification status")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{"verified": verified})
}

// Verify handles PATCH /api/user/verify (public, token-gated)
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.Verify(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "verify user")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// UpdateProfile handles PATCH /api/user/profile (authenticated)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ChangePicture handles PATCH /api/user/profile/picture (authenticated)
func (h *UserHandler) ChangePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	image, uploadErr := utils.ReadImageFile(r, "images", "imageUrl", h.maxBytes)
	if uploadErr != nil {
		respondError(w, h.log, uploadErr, "change profile picture")
		return
	}

	user, err := h.service.ChangePicture(r.Context(), userID, image)
	if err != nil {
		respondError(w, h.log, err, "change profile picture")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// RemovePicture handles DELETE /api/user/profile/picture (authenticated)
func (h *UserHandler) RemovePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	if err := h.service.RemovePicture(r.Context(), userID); err != nil {
		respondError(w, h.log, err, "remove profile picture")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListUsers handles GET /api/user/listuser (admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := listquery.ParseParams(r.URL.Query())

	users, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		respondError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}
