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

var categoryListSpec = listquery.Spec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":         "id",
		"name":       "name",
		"created_at": "created_at",
	},
	SearchColumns: []string{"name", "description"},
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ProductCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductCategory, error)
	List(ctx context.Context, params listquery.Params) ([]*entity.ProductCategory, int64, error)
	Update(ctx context.Context, category *entity.ProductCategory) error
	// Delete refuses when any live product still references the category,
	// returning ErrCategoryInUse. The reference check and the delete run in
	// one transaction so a concurrent product insert cannot slip between.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrCategoryInUse is returned when deletion would orphan products.
var ErrCategoryInUse = fmt.Errorf("category is referenced by existing products")

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

const categoryColumns = `id, name, description, created_at, updated_at`

func (r *categoryRepository) Create(ctx context.Context, category *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM product_categories
		WHERE id = $1 AND deleted_at IS NULL
	`

	var category entity.ProductCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, params listquery.Params) ([]*entity.ProductCategory, int64, error) {
	q := categoryListSpec.Build(params, 1)

	countQuery := `SELECT COUNT(*) FROM product_categories WHERE deleted_at IS NULL` + q.Where

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, q.CountArgs()...).Scan(&total); err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	pageQuery := `SELECT ` + categoryColumns + ` FROM product_categories WHERE deleted_at IS NULL` + q.Where + q.Tail

	rows, err := r.db.Query(ctx, pageQuery, q.Args()...)
	if err != nil {
		r.log.Error("Failed to list categories",
			zap.Error(err),
			zap.Int("page", params.Page),
			zap.String("keyword", params.Keyword),
		)
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ProductCategory
	for rows.Next() {
		var category entity.ProductCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return categories, total, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.ProductCategory) error {
	query := `
		UPDATE product_categories
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID.String()),
		)
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted")
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete category: %w", err)
	}
	defer tx.Rollback(ctx)

	var referenced int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1 AND deleted_at IS NULL`,
		id,
	).Scan(&referenced)
	if err != nil {
		r.log.Error("Failed to check category references",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("failed to check category references: %w", err)
	}

	if referenced > 0 {
		return ErrCategoryInUse
	}

	result, err := tx.Exec(ctx,
		`UPDATE product_categories SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete category: %w", err)
	}

	r.log.Info("Category soft deleted", zap.String("category_id", id.String()))
	return nil
}
