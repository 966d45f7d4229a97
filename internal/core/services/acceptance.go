// internal/core/services/acceptance.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// maxItemsPerSku bounds one intake line: 0 < count < 1000.
const maxItemsPerSku = 1000

// AcceptanceService handles the stock intake workflow.
type AcceptanceService struct {
	acceptances ports.AcceptanceRepository
	skus        ports.SkuRepository
	items       ports.ItemRepository
	tasks       ports.TaskRepository
	db          ports.Database
	jobs        ports.JobEnqueuer
	logger      *slog.Logger
}

// Statically assert that *AcceptanceService implements the service port.
var _ ports.AcceptanceService = (*AcceptanceService)(nil)

// NewAcceptanceService creates a new acceptance service
func NewAcceptanceService(
	acceptances ports.AcceptanceRepository,
	skus ports.SkuRepository,
	items ports.ItemRepository,
	tasks ports.TaskRepository,
	db ports.Database,
	jobs ports.JobEnqueuer,
	logger *slog.Logger,
) *AcceptanceService {
	return &AcceptanceService{
		acceptances: acceptances,
		skus:        skus,
		items:       items,
		tasks:       tasks,
		db:          db,
		jobs:        jobs,
		logger:      logger.With(slog.String("service", "acceptance")),
	}
}

// CreateAcceptance persists an intake batch: per group it gets-or-creates the
// sku (unknown sku ids become new skus with 0.00 prices), creates count items
// with stock records in the requested status, and opens one placing task per
// item. Processing is handed off to a background job; the id is returned
// immediately.
func (s *AcceptanceService) CreateAcceptance(ctx context.Context, groups []ports.AcceptanceGroup) (uuid.UUID, error) {
	for _, g := range groups {
		if g.Count <= 0 || g.Count >= maxItemsPerSku {
			return uuid.Nil, fmt.Errorf("%w: count must be between 1 and %d, got %d",
				domain.ErrValidation, maxItemsPerSku-1, g.Count)
		}
		if g.Stock != domain.StockValid && g.Stock != domain.StockDefect {
			return uuid.Nil, fmt.Errorf("%w: acceptance stock must be Valid or Defect, got %q",
				domain.ErrValidation, g.Stock)
		}
	}

	acceptance := domain.NewAcceptance()

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.acceptances.CreateTx(ctx, tx, acceptance); err != nil {
			return err
		}

		for _, g := range groups {
			if err := s.skus.CreateTx(ctx, tx, domain.NewSku(g.SkuID)); err != nil {
				return err
			}

			for i := 0; i < g.Count; i++ {
				item := &domain.Item{
					ID:           uuid.New(),
					SkuID:        g.SkuID,
					AcceptanceID: &acceptance.ID,
					Stock: domain.Stock{
						ID:     uuid.New(),
						Status: g.Stock,
					},
				}
				if err := s.items.CreateTx(ctx, tx, item); err != nil {
					return err
				}

				task := domain.NewTask(domain.TaskPlacing, item.ID)
				task.AcceptanceID = &acceptance.ID
				if err := s.tasks.CreateTx(ctx, tx, task); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create acceptance: %w", err)
	}

	s.logger.InfoContext(ctx, "acceptance created",
		slog.String("acceptance_id", acceptance.ID.String()),
		slog.Int("groups", len(groups)))

	if err := s.jobs.EnqueueAcceptanceProcessing(ctx, acceptance.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue acceptance processing: %w", err)
	}

	return acceptance.ID, nil
}

// ProcessAcceptance completes every in-work placing task of the acceptance.
// The acceptance counts as done once no active placing tasks remain. Safe to
// re-run: already-terminal tasks are not touched.
func (s *AcceptanceService) ProcessAcceptance(ctx context.Context, acceptanceID uuid.UUID) error {
	acceptance, err := s.acceptances.FindByID(ctx, acceptanceID)
	if err != nil {
		return fmt.Errorf("failed to load acceptance: %w", err)
	}
	if acceptance == nil {
		return fmt.Errorf("acceptance %s: %w", acceptanceID, domain.ErrNotFound)
	}

	completed, err := s.tasks.CompletePlacingByAcceptanceID(ctx, acceptanceID)
	if err != nil {
		return fmt.Errorf("failed to process acceptance: %w", err)
	}

	s.logger.InfoContext(ctx, "acceptance processed",
		slog.String("acceptance_id", acceptanceID.String()),
		slog.Int64("tasks_completed", completed))

	return nil
}

// GetAcceptanceInfo assembles the intake progress view: item counts grouped
// by (sku, stock status) over completed placing tasks, plus a task summary.
func (s *AcceptanceService) GetAcceptanceInfo(ctx context.Context, acceptanceID uuid.UUID) (*ports.AcceptanceInfo, error) {
	acceptance, err := s.acceptances.FindByID(ctx, acceptanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load acceptance: %w", err)
	}
	if acceptance == nil {
		return nil, fmt.Errorf("acceptance %s: %w", acceptanceID, domain.ErrNotFound)
	}

	tasks, err := s.tasks.FindByAcceptanceID(ctx, acceptanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load acceptance tasks: %w", err)
	}

	placing := make([]domain.Task, 0, len(tasks))
	itemIDs := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		if t.Type != domain.TaskPlacing {
			continue
		}
		placing = append(placing, t)
		itemIDs = append(itemIDs, t.ItemID)
	}

	items, err := s.items.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load acceptance items: %w", err)
	}
	itemByID := make(map[uuid.UUID]*domain.Item, len(items))
	for i := range items {
		itemByID[items[i].ID] = &items[i]
	}

	// Count accepted items per (sku, stock status), keeping first-seen order.
	type groupKey struct {
		skuID  uuid.UUID
		status domain.StockStatus
	}
	counts := make(map[groupKey]int)
	var order []groupKey

	info := &ports.AcceptanceInfo{
		ID:        acceptance.ID,
		CreatedAt: acceptance.CreatedAt,
		Accepted:  []ports.AcceptedGroup{},
		Tasks:     make([]ports.TaskSummary, 0, len(placing)),
	}

	for _, t := range placing {
		info.Tasks = append(info.Tasks, ports.TaskSummary{ID: t.ID, Status: t.Status})

		if t.Status != domain.TaskCompleted {
			continue
		}
		item, ok := itemByID[t.ItemID]
		if !ok {
			continue
		}
		key := groupKey{skuID: item.SkuID, status: item.Stock.Status}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	for _, key := range order {
		apiStatus, err := domain.StockStatusToAPI(key.status)
		if err != nil {
			return nil, err
		}
		info.Accepted = append(info.Accepted, ports.AcceptedGroup{
			SkuID: key.skuID,
			Stock: apiStatus,
			Count: counts[key],
		})
	}

	return info, nil
}
