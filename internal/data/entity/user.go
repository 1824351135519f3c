package entity

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

type User struct {
	Base
	FullName       string   `db:"full_name"`
	Email          string   `db:"email"`
	PhoneNumber    *string  `db:"phone_number"`
	PasswordHash   *string  `db:"password_hash"` // nil until the account is verified
	Role           UserRole `db:"role"`
	IsVerified     bool     `db:"is_verified"`
	ProfilePicture *string  `db:"profile_picture"` // blob name, nil when absent
}
