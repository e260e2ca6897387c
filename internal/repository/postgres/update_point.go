package postgres

import (
	"context"
	"fmt"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUpdatePointRepository implements the UpdatePointRepository
// interface. The full chain (point → update → product) is joined in every
// query so authorization and access happen in one round trip.
type PostgresUpdatePointRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUpdatePointRepository creates a new update point repository
func NewUpdatePointRepository(config *RepositoryConfig) repositories.UpdatePointRepository {
	return &PostgresUpdatePointRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new update point
func (r *PostgresUpdatePointRepository) Create(ctx context.Context, point *models.UpdatePoint) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, update_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.UpdatePoints)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		point.Name,
		point.Description,
		point.UpdateID,
	).Scan(&point.ID, &point.CreatedAt, &point.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("update %s: %w", point.UpdateID, domain.ErrNotFound)
		}
		return fmt.Errorf("create update point: %w", err)
	}

	return nil
}

// GetByID retrieves an update point together with the root product owner ID
func (r *PostgresUpdatePointRepository) GetByID(ctx context.Context, id string) (*models.UpdatePoint, string, error) {
	query := fmt.Sprintf(`
		SELECT up.id, up.name, up.description, up.update_id,
		       up.created_at, up.updated_at, p.user_id
		FROM %s up
		JOIN %s u ON u.id = up.update_id
		JOIN %s p ON p.id = u.product_id
		WHERE up.id = $1
	`, r.tables.UpdatePoints, r.tables.Updates, r.tables.Products)

	var point models.UpdatePoint
	var ownerID string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&point.ID,
		&point.Name,
		&point.Description,
		&point.UpdateID,
		&point.CreatedAt,
		&point.UpdatedAt,
		&ownerID,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, "", fmt.Errorf("update point %s: %w", id, domain.ErrNotFound)
		}
		return nil, "", fmt.Errorf("get update point: %w", err)
	}

	return &point, ownerID, nil
}

// List retrieves all update points whose chain is owned by the user
func (r *PostgresUpdatePointRepository) List(ctx context.Context, userID string) ([]models.UpdatePoint, error) {
	query := fmt.Sprintf(`
		SELECT up.id, up.name, up.description, up.update_id,
		       up.created_at, up.updated_at
		FROM %s up
		JOIN %s u ON u.id = up.update_id
		JOIN %s p ON p.id = u.product_id
		WHERE p.user_id = $1
		ORDER BY up.created_at DESC
	`, r.tables.UpdatePoints, r.tables.Updates, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list update points: %w", err)
	}
	defer rows.Close()

	var points []models.UpdatePoint
	for rows.Next() {
		var point models.UpdatePoint
		err := rows.Scan(
			&point.ID,
			&point.Name,
			&point.Description,
			&point.UpdateID,
			&point.CreatedAt,
			&point.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan update point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate update points: %w", err)
	}

	return points, nil
}

// Update applies mutable fields where the point's chain is owned by userID
func (r *PostgresUpdatePointRepository) Update(ctx context.Context, point *models.UpdatePoint, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s up
		SET name = $1, description = $2, updated_at = NOW()
		FROM %s u
		JOIN %s p ON p.id = u.product_id
		WHERE up.id = $3 AND u.id = up.update_id AND p.user_id = $4
		RETURNING up.updated_at
	`, r.tables.UpdatePoints, r.tables.Updates, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		point.Name,
		point.Description,
		point.ID,
		userID,
	).Scan(&point.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("update point %s: %w", point.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update update point: %w", err)
	}

	return nil
}

// Delete removes an update point where its chain is owned by userID
func (r *PostgresUpdatePointRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s up
		USING %s u
		JOIN %s p ON p.id = u.product_id
		WHERE up.id = $1 AND u.id = up.update_id AND p.user_id = $2
		RETURNING up.id
	`, r.tables.UpdatePoints, r.tables.Updates, r.tables.Products)

	var deleted string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id, userID).Scan(&deleted); err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("update point %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete update point: %w", err)
	}

	return nil
}
