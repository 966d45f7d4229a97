// internal/adapters/db/sku_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// skuRepository implements ports.SkuRepository
type skuRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSkuRepository creates a new sku repository
func NewSkuRepository(db *Database, logger *slog.Logger) ports.SkuRepository {
	return &skuRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sku")),
	}
}

// CreateTx inserts a sku within an existing transaction. Sku ids come from
// the outside world (intake requests), so the id is caller-supplied and an
// already known id leaves the existing row untouched.
func (r *skuRepository) CreateTx(ctx context.Context, tx pgx.Tx, sku *domain.Sku) error {
	query := `
		INSERT INTO skus (id, created_at, base_price, actual_price, count, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	_, err := tx.Exec(ctx, query,
		sku.ID, sku.CreatedAt, sku.BasePrice, sku.ActualPrice, sku.Count, sku.IsHidden,
	)
	if err != nil {
		return fmt.Errorf("failed to create sku: %w", err)
	}

	r.logger.DebugContext(ctx, "sku created",
		slog.String("sku_id", sku.ID.String()))

	return nil
}

// FindByID retrieves a sku by id, or nil when it does not exist.
func (r *skuRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sku, error) {
	query := `
		SELECT id, created_at, base_price, actual_price, count, is_hidden, discount_id
		FROM skus
		WHERE id = $1`

	sku := &domain.Sku{}
	var discountID pgtype.UUID

	err := r.db.QueryRow(ctx, query, id).Scan(
		&sku.ID, &sku.CreatedAt, &sku.BasePrice, &sku.ActualPrice,
		&sku.Count, &sku.IsHidden, &discountID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sku: %w", err)
	}

	if discountID.Valid {
		v := uuid.UUID(discountID.Bytes)
		sku.DiscountID = &v
	}

	return sku, nil
}

// FindByIDs retrieves the skus matching the given ids. Missing ids are
// silently absent from the result.
func (r *skuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Sku, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, created_at, base_price, actual_price, count, is_hidden, discount_id
		FROM skus
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query skus: %w", err)
	}
	defer rows.Close()

	var skus []domain.Sku
	for rows.Next() {
		var sku domain.Sku
		var discountID pgtype.UUID

		err := rows.Scan(
			&sku.ID, &sku.CreatedAt, &sku.BasePrice, &sku.ActualPrice,
			&sku.Count, &sku.IsHidden, &discountID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sku: %w", err)
		}

		if discountID.Valid {
			v := uuid.UUID(discountID.Bytes)
			sku.DiscountID = &v
		}

		skus = append(skus, sku)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return skus, nil
}

// UpdateActualPrice sets the display price of a sku.
func (r *skuRepository) UpdateActualPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	query := `UPDATE skus SET actual_price = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, price)
	if err != nil {
		return fmt.Errorf("failed to update actual price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sku %s: %w", id, domain.ErrNotFound)
	}

	r.logger.DebugContext(ctx, "sku actual price updated",
		slog.String("sku_id", id.String()),
		slog.String("actual_price", price.String()))

	return nil
}

// SetBasePrice sets the undiscounted price of a sku.
func (r *skuRepository) SetBasePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	query := `UPDATE skus SET base_price = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, price)
	if err != nil {
		return fmt.Errorf("failed to set base price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sku %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetHidden hides or shows a sku for purchase.
func (r *skuRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	query := `UPDATE skus SET is_hidden = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, hidden)
	if err != nil {
		return fmt.Errorf("failed to set hidden flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sku %s: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "sku visibility changed",
		slog.String("sku_id", id.String()),
		slog.Bool("is_hidden", hidden))

	return nil
}

// SetDiscountTx links a sku to a discount within an existing transaction.
func (r *skuRepository) SetDiscountTx(ctx context.Context, tx pgx.Tx, skuID, discountID uuid.UUID) error {
	query := `UPDATE skus SET discount_id = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, skuID, discountID)
	if err != nil {
		return fmt.Errorf("failed to link sku to discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sku %s: %w", skuID, domain.ErrNotFound)
	}

	return nil
}
