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

var productListSpec = listquery.Spec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":         "id",
		"name":       "name",
		"price":      "price",
		"weight":     "weight",
		"created_at": "created_at",
	},
	SearchColumns: []string{"name", "description"},
}

// ErrCategoryNotFound is returned when a product references a missing category.
var ErrCategoryNotFound = fmt.Errorf("product category not found")

type ProductRepository interface {
	// Create inserts the product after locking its category row inside one
	// transaction, so the category cannot be deleted mid-insert.
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, params listquery.Params, categoryID *uuid.UUID) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateImage(ctx context.Context, id uuid.UUID, image string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, description, price, weight, category_id, image, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create product: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the category row for the duration of the insert.
	var categoryID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM product_categories WHERE id = $1 AND deleted_at IS NULL FOR SHARE`,
		product.CategoryID,
	).Scan(&categoryID)
	if err == pgx.ErrNoRows {
		return ErrCategoryNotFound
	}
	if err != nil {
		r.log.Error("Failed to check product category",
			zap.Error(err),
			zap.String("category_id", product.CategoryID.String()),
		)
		return fmt.Errorf("failed to check product category: %w", err)
	}

	query := `
		INSERT INTO products (id, name, description, price, weight, category_id, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Weight,
		product.CategoryID,
		product.Image,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Weight,
		&product.CategoryID,
		&product.Image,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

func (r *productRepository) List(ctx context.Context, params listquery.Params, categoryID *uuid.UUID) ([]*entity.Product, int64, error) {
	base := `FROM products WHERE deleted_at IS NULL`
	baseArgs := []any{}
	startArg := 1

	if categoryID != nil {
		base += fmt.Sprintf(" AND category_id = $%d", startArg)
		baseArgs = append(baseArgs, *categoryID)
		startArg++
	}

	q := productListSpec.Build(params, startArg)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+base+q.Where, q.CountArgs(baseArgs...)...).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	pageQuery := `SELECT ` + productColumns + ` ` + base + q.Where + q.Tail

	rows, err := r.db.Query(ctx, pageQuery, q.Args(baseArgs...)...)
	if err != nil {
		r.log.Error("Failed to list products",
			zap.Error(err),
			zap.Int("page", params.Page),
			zap.String("keyword", params.Keyword),
		)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Weight,
			&product.CategoryID,
			&product.Image,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, weight = $5, category_id = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Weight,
		product.CategoryID,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	return nil
}

func (r *productRepository) UpdateImage(ctx context.Context, id uuid.UUID, image string) error {
	query := `UPDATE products SET image = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, image)
	if err != nil {
		r.log.Error("Failed to update product image",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("failed to update product image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	r.log.Info("Product soft deleted", zap.String("product_id", id.String()))
	return nil
}
