package request

type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=9,max=15"`
}

// VerifyRequest completes account verification: the one-time token from the
// verification email plus the password being created.
type VerifyRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Token           string `json:"token" validate:"required"`
}

type ProfileUpdateRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=3,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,min=9,max=15"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
