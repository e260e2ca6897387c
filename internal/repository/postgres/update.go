package postgres

import (
	"context"
	"fmt"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUpdateRepository implements the UpdateRepository interface.
// Reads join updates to products so the root owner comes back with the row;
// writes carry the same join in a single conditional statement.
type PostgresUpdateRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUpdateRepository creates a new update repository
func NewUpdateRepository(config *RepositoryConfig) repositories.UpdateRepository {
	return &PostgresUpdateRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new update
func (r *PostgresUpdateRepository) Create(ctx context.Context, update *models.Update) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, body, status, version, asset, product_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Updates)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		update.Title,
		update.Body,
		update.Status,
		update.Version,
		update.Asset,
		update.ProductID,
	).Scan(&update.ID, &update.CreatedAt, &update.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("product %s: %w", update.ProductID, domain.ErrNotFound)
		}
		return fmt.Errorf("create update: %w", err)
	}

	return nil
}

// GetByID retrieves an update together with the root product owner ID
func (r *PostgresUpdateRepository) GetByID(ctx context.Context, id string) (*models.Update, string, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.title, u.body, u.status, u.version, u.asset, u.product_id,
		       u.created_at, u.updated_at, p.user_id
		FROM %s u
		JOIN %s p ON p.id = u.product_id
		WHERE u.id = $1
	`, r.tables.Updates, r.tables.Products)

	var update models.Update
	var ownerID string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&update.ID,
		&update.Title,
		&update.Body,
		&update.Status,
		&update.Version,
		&update.Asset,
		&update.ProductID,
		&update.CreatedAt,
		&update.UpdatedAt,
		&ownerID,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, "", fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
		}
		return nil, "", fmt.Errorf("get update: %w", err)
	}

	return &update, ownerID, nil
}

// List retrieves all updates whose product is owned by the user
func (r *PostgresUpdateRepository) List(ctx context.Context, userID string) ([]models.Update, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.title, u.body, u.status, u.version, u.asset, u.product_id,
		       u.created_at, u.updated_at
		FROM %s u
		JOIN %s p ON p.id = u.product_id
		WHERE p.user_id = $1
		ORDER BY u.created_at DESC
	`, r.tables.Updates, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var updates []models.Update
	for rows.Next() {
		var update models.Update
		err := rows.Scan(
			&update.ID,
			&update.Title,
			&update.Body,
			&update.Status,
			&update.Version,
			&update.Asset,
			&update.ProductID,
			&update.CreatedAt,
			&update.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan update: %w", err)
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate updates: %w", err)
	}

	return updates, nil
}

// Update applies mutable fields where the update's product is owned by
// userID. The ownership chain is part of the statement, so a concurrent
// ownership change or delete simply yields zero rows.
func (r *PostgresUpdateRepository) Update(ctx context.Context, update *models.Update, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s u
		SET title = $1, body = $2, status = $3, version = $4, asset = $5, updated_at = NOW()
		FROM %s p
		WHERE u.id = $6 AND p.id = u.product_id AND p.user_id = $7
		RETURNING u.updated_at
	`, r.tables.Updates, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		update.Title,
		update.Body,
		update.Status,
		update.Version,
		update.Asset,
		update.ID,
		userID,
	).Scan(&update.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("update %s: %w", update.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update update: %w", err)
	}

	return nil
}

// Delete removes an update where its product is owned by userID
func (r *PostgresUpdateRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s u
		USING %s p
		WHERE u.id = $1 AND p.id = u.product_id AND p.user_id = $2
		RETURNING u.id
	`, r.tables.Updates, r.tables.Products)

	var deleted string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id, userID).Scan(&deleted); err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete update: %w", err)
	}

	return nil
}
