// internal/adapters/db/acceptance_repository.go
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

// acceptanceRepository implements ports.AcceptanceRepository
type acceptanceRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewAcceptanceRepository creates a new acceptance repository
func NewAcceptanceRepository(db *Database, logger *slog.Logger) ports.AcceptanceRepository {
	return &acceptanceRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "acceptance")),
	}
}

// CreateTx inserts an acceptance batch within an existing transaction.
func (r *acceptanceRepository) CreateTx(ctx context.Context, tx pgx.Tx, acceptance *domain.Acceptance) error {
	query := `INSERT INTO acceptances (id, created_at) VALUES ($1, $2)`

	_, err := tx.Exec(ctx, query, acceptance.ID, acceptance.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create acceptance: %w", err)
	}

	r.logger.DebugContext(ctx, "acceptance created",
		slog.String("acceptance_id", acceptance.ID.String()))

	return nil
}

// FindByID retrieves an acceptance by id, or nil when it does not exist.
func (r *acceptanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Acceptance, error) {
	query := `SELECT id, created_at FROM acceptances WHERE id = $1`

	acceptance := &domain.Acceptance{}
	err := r.db.QueryRow(ctx, query, id).Scan(&acceptance.ID, &acceptance.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find acceptance: %w", err)
	}

	return acceptance, nil
}
