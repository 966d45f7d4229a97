// internal/adapters/db/discount_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// discountRepository implements ports.DiscountRepository
type discountRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *Database, logger *slog.Logger) ports.DiscountRepository {
	return &discountRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "discount")),
	}
}

// CreateTx inserts a discount within an existing transaction. Sku links are
// written by SkuRepository in the same transaction.
func (r *discountRepository) CreateTx(ctx context.Context, tx pgx.Tx, discount *domain.Discount) error {
	query := `
		INSERT INTO discounts (id, created_at, status, percentage)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query,
		discount.ID, discount.CreatedAt, discount.Status, discount.Percentage)
	if err != nil {
		return fmt.Errorf("failed to create discount: %w", err)
	}

	r.logger.DebugContext(ctx, "discount created",
		slog.String("discount_id", discount.ID.String()),
		slog.Int("percentage", discount.Percentage))

	return nil
}

// FindByID retrieves a discount with the ids of the skus it applies to, or
// nil when it does not exist.
func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Discount, error) {
	query := `SELECT id, created_at, status, percentage FROM discounts WHERE id = $1`

	discount := &domain.Discount{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&discount.ID, &discount.CreatedAt, &discount.Status, &discount.Percentage)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find discount: %w", err)
	}

	skuQuery := `SELECT id FROM skus WHERE discount_id = $1`
	rows, err := r.db.Query(ctx, skuQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount skus: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var skuID uuid.UUID
		if err := rows.Scan(&skuID); err != nil {
			return nil, fmt.Errorf("failed to scan sku id: %w", err)
		}
		discount.SkuIDs = append(discount.SkuIDs, skuID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return discount, nil
}

// UpdateStatus transitions a discount.
func (r *discountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DiscountStatus) error {
	query := `UPDATE discounts SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update discount status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("discount %s: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "discount status updated",
		slog.String("discount_id", id.String()),
		slog.String("status", string(status)))

	return nil
}
