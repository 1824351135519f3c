package repository

import (
	"context"
	"fmt"

	"warehouse-api/internal/data/entity"
	"warehouse-api/pkg/database"
	"warehouse-api/pkg/listquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var userListSpec = listquery.Spec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":         "id",
		"full_name":  "full_name",
		"email":      "email",
		"role":       "role",
		"created_at": "created_at",
	},
	SearchColumns: []string{"full_name", "email"},
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, params listquery.Params) ([]*entity.User, int64, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	// Verify sets the password hash and flips is_verified in one statement,
	// guarded so an already-verified row is never overwritten.
	Verify(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error)
	UpdatePicture(ctx context.Context, id uuid.UUID, picture *string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, full_name, email, phone_number, password_hash, role, is_verified, profile_picture, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, full_name, email, phone_number, password_hash, role,
		                   is_verified, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Role,
		user.IsVerified,
		user.ProfilePicture,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) scanOne(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Role,
		&user.IsVerified,
		&user.ProfilePicture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, params listquery.Params) ([]*entity.User, int64, error) {
	q := userListSpec.Build(params, 1)

	countQuery := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL` + q.Where

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, q.CountArgs()...).Scan(&total); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	pageQuery := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL` + q.Where + q.Tail

	rows, err := r.db.Query(ctx, pageQuery, q.Args()...)
	if err != nil {
		r.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("page", params.Page),
			zap.String("keyword", params.Keyword),
		)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.Email,
			&user.PhoneNumber,
			&user.PasswordHash,
			&user.Role,
			&user.IsVerified,
			&user.ProfilePicture,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return users, total, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = $2, phone_number = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.PhoneNumber,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted")
	}

	return nil
}

func (r *userRepository) Verify(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $2, is_verified = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_verified = FALSE AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to verify user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return false, fmt.Errorf("failed to verify user: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *userRepository) UpdatePicture(ctx context.Context, id uuid.UUID, picture *string) error {
	query := `UPDATE users SET profile_picture = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, picture)
	if err != nil {
		r.log.Error("Failed to update profile picture",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("failed to update profile picture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
