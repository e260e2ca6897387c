package postgres

import (
	"context"
	"fmt"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProductRepository implements the ProductRepository interface.
// Every mutation filters by id AND user_id in one statement, so the
// ownership check cannot race with the write it guards.
type PostgresProductRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProductRepository creates a new product repository
func NewProductRepository(config *RepositoryConfig) repositories.ProductRepository {
	return &PostgresProductRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, price, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.UserID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{Field: "name"}
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product scoped to its owner
func (r *PostgresProductRepository) GetByID(ctx context.Context, id, userID string) (*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, price, user_id, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Products)

	var product models.Product
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.UserID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

// GetByIDOnly retrieves a product by ID regardless of owner
func (r *PostgresProductRepository) GetByIDOnly(ctx context.Context, id string) (*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, price, user_id, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Products)

	var product models.Product
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.UserID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

// List retrieves all products owned by the user, newest first
func (r *PostgresProductRepository) List(ctx context.Context, userID string) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, price, user_id, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.UserID,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// Update applies mutable fields where id and owner both match
func (r *PostgresProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, price = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING updated_at
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.ID,
		product.UserID,
	).Scan(&product.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("product %s: %w", product.ID, domain.ErrNotFound)
		}
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{Field: "name"}
		}
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

// Delete removes a product where id and owner both match
func (r *PostgresProductRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`, r.tables.Products)

	var deleted string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id, userID).Scan(&deleted); err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}
