// internal/adapters/db/posting_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// postingRepository implements ports.PostingRepository
type postingRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPostingRepository creates a new posting repository
func NewPostingRepository(db *Database, logger *slog.Logger) ports.PostingRepository {
	return &postingRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "posting")),
	}
}

// CreateTx inserts a posting within an existing transaction.
func (r *postingRepository) CreateTx(ctx context.Context, tx pgx.Tx, posting *domain.Posting) error {
	query := `
		INSERT INTO postings (id, created_at, status, cost)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query,
		posting.ID, posting.CreatedAt, posting.Status, posting.Cost)
	if err != nil {
		return fmt.Errorf("failed to create posting: %w", err)
	}

	r.logger.DebugContext(ctx, "posting created",
		slog.String("posting_id", posting.ID.String()))

	return nil
}

// FindByID retrieves a posting by id, or nil when it does not exist.
func (r *postingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error) {
	query := `SELECT id, created_at, status, cost FROM postings WHERE id = $1`

	posting := &domain.Posting{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&posting.ID, &posting.CreatedAt, &posting.Status, &posting.Cost)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find posting: %w", err)
	}

	return posting, nil
}

// UpdateStatus transitions a posting.
func (r *postingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PostingStatus) error {
	query := `UPDATE postings SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update posting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("posting %s: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "posting status updated",
		slog.String("posting_id", id.String()),
		slog.String("status", string(status)))

	return nil
}

// UpdateStatusTx transitions a posting within an existing transaction.
func (r *postingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.PostingStatus) error {
	query := `UPDATE postings SET status = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update posting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("posting %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateCostAndStatus finalizes a posting in one statement.
func (r *postingRepository) UpdateCostAndStatus(ctx context.Context, id uuid.UUID, cost decimal.Decimal, status domain.PostingStatus) error {
	query := `UPDATE postings SET cost = $2, status = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, cost, status)
	if err != nil {
		return fmt.Errorf("failed to finalize posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("posting %s: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "posting finalized",
		slog.String("posting_id", id.String()),
		slog.String("status", string(status)),
		slog.String("cost", cost.String()))

	return nil
}
