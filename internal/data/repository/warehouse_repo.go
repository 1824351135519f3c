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

// warehouseListSpec: sortable and searchable columns for warehouse lists.
var warehouseListSpec = listquery.Spec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":         "id",
		"name":       "name",
		"address":    "address",
		"province":   "province",
		"city":       "city",
		"district":   "district",
		"created_at": "created_at",
	},
	SearchColumns: []string{"name", "city", "province"},
}

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error)
	FindAll(ctx context.Context) ([]*entity.Warehouse, error)
	List(ctx context.Context, params listquery.Params) ([]*entity.Warehouse, int64, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type warehouseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWarehouseRepository(db database.PgxIface, log *zap.Logger) WarehouseRepository {
	return &warehouseRepository{
		db:  db,
		log: log.With(zap.String("repository", "warehouse")),
	}
}

const warehouseColumns = `id, name, address, province, city, district, created_at, updated_at`

func (r *warehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, address, province, city, district, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		warehouse.ID,
		warehouse.Name,
		warehouse.Address,
		warehouse.Province,
		warehouse.City,
		warehouse.District,
		warehouse.CreatedAt,
		warehouse.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create warehouse",
			zap.Error(err),
			zap.String("name", warehouse.Name),
		)
		return fmt.Errorf("failed to create warehouse: %w", err)
	}

	return nil
}

func (r *warehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE id = $1 AND deleted_at IS NULL
	`

	var warehouse entity.Warehouse
	err := r.db.QueryRow(ctx, query, id).Scan(
		&warehouse.ID,
		&warehouse.Name,
		&warehouse.Address,
		&warehouse.Province,
		&warehouse.City,
		&warehouse.District,
		&warehouse.CreatedAt,
		&warehouse.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find warehouse by ID",
			zap.Error(err),
			zap.String("warehouse_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find warehouse: %w", err)
	}

	return &warehouse, nil
}

func (r *warehouseRepository) FindAll(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all warehouses", zap.Error(err))
		return nil, fmt.Errorf("failed to find warehouses: %w", err)
	}
	defer rows.Close()

	return scanWarehouses(rows)
}

// List runs the paginated, sorted, keyword-filtered warehouse query. Count
// and page read are separate statements; totals may drift between them.
func (r *warehouseRepository) List(ctx context.Context, params listquery.Params) ([]*entity.Warehouse, int64, error) {
	q := warehouseListSpec.Build(params, 1)

	countQuery := `SELECT COUNT(*) FROM warehouses WHERE deleted_at IS NULL` + q.Where

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, q.CountArgs()...).Scan(&total); err != nil {
		r.log.Error("Failed to count warehouses", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count warehouses: %w", err)
	}

	pageQuery := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE deleted_at IS NULL` + q.Where + q.Tail

	rows, err := r.db.Query(ctx, pageQuery, q.Args()...)
	if err != nil {
		r.log.Error("Failed to list warehouses",
			zap.Error(err),
			zap.Int("page", params.Page),
			zap.String("keyword", params.Keyword),
		)
		return nil, 0, fmt.Errorf("failed to list warehouses: %w", err)
	}
	defer rows.Close()

	warehouses, err := scanWarehouses(rows)
	if err != nil {
		return nil, 0, err
	}

	return warehouses, total, nil
}

func (r *warehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, address = $3, province = $4, city = $5, district = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		warehouse.ID,
		warehouse.Name,
		warehouse.Address,
		warehouse.Province,
		warehouse.City,
		warehouse.District,
		warehouse.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update warehouse",
			zap.Error(err),
			zap.String("warehouse_id", warehouse.ID.String()),
		)
		return fmt.Errorf("failed to update warehouse: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("warehouse not found or already deleted")
	}

	return nil
}

func (r *warehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE warehouses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete warehouse",
			zap.Error(err),
			zap.String("warehouse_id", id.String()),
		)
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("warehouse not found or already deleted")
	}

	r.log.Info("Warehouse soft deleted", zap.String("warehouse_id", id.String()))
	return nil
}

func scanWarehouses(rows pgx.Rows) ([]*entity.Warehouse, error) {
	var warehouses []*entity.Warehouse
	for rows.Next() {
		var warehouse entity.Warehouse
		err := rows.Scan(
			&warehouse.ID,
			&warehouse.Name,
			&warehouse.Address,
			&warehouse.Province,
			&warehouse.City,
			&warehouse.District,
			&warehouse.CreatedAt,
			&warehouse.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, &warehouse)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return warehouses, nil
}
