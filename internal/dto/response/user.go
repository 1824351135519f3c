package response

import (
	"time"

	"warehouse-api/internal/data/entity"
)

type UserResponse struct {
	ID                string          `json:"id"`
	FullName          string          `json:"fullName"`
	Email             string          `json:"email"`
	PhoneNumber       *string         `json:"phoneNumber,omitempty"`
	Role              entity.UserRole `json:"role"`
	IsVerified        bool            `json:"is_verified"`
	ProfilePictureURL *string         `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Helper converters
func UserToResponse(user *entity.User, pictureURL *string) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		FullName:          user.FullName,
		Email:             user.Email,
		PhoneNumber:       user.PhoneNumber,
		Role:              user.Role,
		IsVerified:        user.IsVerified,
		ProfilePictureURL: pictureURL,
		CreatedAt:         user.CreatedAt,
	}
}
