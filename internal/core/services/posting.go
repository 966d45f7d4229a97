// internal/core/services/posting.go
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

// PostingService handles order creation, fulfillment and cancellation.
type PostingService struct {
	postings ports.PostingRepository
	items    ports.ItemRepository
	tasks    ports.TaskRepository
	db       ports.Database
	jobs     ports.JobEnqueuer
	logger   *slog.Logger
}

// Statically assert that *PostingService implements the service port.
var _ ports.PostingService = (*PostingService)(nil)

// NewPostingService creates a new posting service
func NewPostingService(
	postings ports.PostingRepository,
	items ports.ItemRepository,
	tasks ports.TaskRepository,
	db ports.Database,
	jobs ports.JobEnqueuer,
	logger *slog.Logger,
) *PostingService {
	return &PostingService{
		postings: postings,
		items:    items,
		tasks:    tasks,
		db:       db,
		jobs:     jobs,
		logger:   logger.With(slog.String("service", "posting")),
	}
}

// CreatePosting persists a new order: the named items are reserved and one
// picking task is opened per item. Unknown item ids are silently dropped.
// Fulfillment runs as a background job; the id is returned immediately and
// the caller polls GetPosting for progress.
func (s *PostingService) CreatePosting(ctx context.Context, goods []ports.OrderedGood) (uuid.UUID, error) {
	var itemIDs []uuid.UUID
	for _, g := range goods {
		itemIDs = append(itemIDs, g.FromValidIDs...)
		itemIDs = append(itemIDs, g.FromDefectIDs...)
	}

	found, err := s.items.FindByIDs(ctx, itemIDs)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve ordered items: %w", err)
	}

	posting := domain.NewPosting()

	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.postings.CreateTx(ctx, tx, posting); err != nil {
			return err
		}

		for i := range found {
			if err := s.items.SetReservedTx(ctx, tx, found[i].ID, true); err != nil {
				return err
			}

			task := domain.NewTask(domain.TaskPicking, found[i].ID)
			task.PostingID = &posting.ID
			if err := s.tasks.CreateTx(ctx, tx, task); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create posting: %w", err)
	}

	s.logger.InfoContext(ctx, "posting created",
		slog.String("posting_id", posting.ID.String()),
		slog.Int("items_reserved", len(found)))

	if err := s.jobs.EnqueuePostingFulfillment(ctx, posting.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue posting fulfillment: %w", err)
	}

	return posting.ID, nil
}

// ProcessPickingPosting runs the fulfillment loop until no in-work picking
// tasks remain, then finalizes the posting. Each task transition commits its
// own transaction, so an interrupted run resumes from the surviving in-work
// tasks on redelivery.
//
// Per task: a hidden sku cancels the task; a NotFound stock claims a
// substitute item (new picking task) and cancels the current task; Valid and
// Defect stocks attach the item and complete the task.
func (s *PostingService) ProcessPickingPosting(ctx context.Context, postingID uuid.UUID) error {
	posting, err := s.postings.FindByID(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound)
	}
	if posting.Status.IsTerminal() {
		s.logger.InfoContext(ctx, "posting already finalized, skipping",
			slog.String("posting_id", postingID.String()),
			slog.String("status", string(posting.Status)))
		return nil
	}

	for {
		inWork, err := s.inWorkPickingTasks(ctx, postingID)
		if err != nil {
			return err
		}
		if len(inWork) == 0 {
			break
		}

		for i := range inWork {
			if err := s.processPickingTask(ctx, postingID, &inWork[i]); err != nil {
				return err
			}
		}
	}

	return s.finalizePosting(ctx, postingID)
}

func (s *PostingService) inWorkPickingTasks(ctx context.Context, postingID uuid.UUID) ([]domain.Task, error) {
	tasks, err := s.tasks.FindByPostingID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting tasks: %w", err)
	}

	var inWork []domain.Task
	for _, t := range tasks {
		if t.Type == domain.TaskPicking && t.Status == domain.TaskInWork {
			inWork = append(inWork, t)
		}
	}
	return inWork, nil
}

func (s *PostingService) processPickingTask(ctx context.Context, postingID uuid.UUID, task *domain.Task) error {
	item, err := s.items.FindByID(ctx, task.ItemID)
	if err != nil {
		return fmt.Errorf("failed to load task item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("item %s of task %s: %w", task.ItemID, task.ID, domain.ErrNotFound)
	}

	// A hidden sku is withdrawn from sale: the pick is abandoned.
	if item.Sku.IsHidden {
		if err := s.tasks.UpdateStatus(ctx, task.ID, domain.TaskCanceled); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "picking task canceled, sku hidden",
			slog.String("task_id", task.ID.String()),
			slog.String("sku_id", item.SkuID.String()))
		return nil
	}

	if item.Stock.Status == domain.StockNotFound {
		return s.db.Transaction(ctx, func(tx pgx.Tx) error {
			substitute, err := s.items.ClaimSubstitute(ctx, tx)
			if err != nil {
				return err
			}
			if substitute != nil {
				replacement := domain.NewTask(domain.TaskPicking, substitute.ID)
				replacement.PostingID = &postingID
				if err := s.tasks.CreateTx(ctx, tx, replacement); err != nil {
					return err
				}
				s.logger.InfoContext(ctx, "substitute picking task created",
					slog.String("task_id", replacement.ID.String()),
					slog.String("item_id", substitute.ID.String()))
			} else {
				s.logger.InfoContext(ctx, "no substitute available, picking without item",
					slog.String("task_id", task.ID.String()))
			}
			return s.tasks.UpdateStatusTx(ctx, tx, task.ID, domain.TaskCanceled)
		})
	}

	// Valid or Defect: the item is picked into the posting.
	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.items.AttachToPostingTx(ctx, tx, item.ID, postingID); err != nil {
			return err
		}
		return s.tasks.UpdateStatusTx(ctx, tx, task.ID, domain.TaskCompleted)
	})
}

// finalizePosting computes the order cost from the attached items and marks
// the posting sent, or cancels it when nothing could be picked at all.
func (s *PostingService) finalizePosting(ctx context.Context, postingID uuid.UUID) error {
	items, err := s.items.FindByPostingID(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to load posting items: %w", err)
	}

	if len(items) == 0 {
		if err := s.postings.UpdateStatus(ctx, postingID, domain.PostingCanceled); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "posting canceled, no items picked",
			slog.String("posting_id", postingID.String()))
		return nil
	}

	cost := domain.PostingCost(items)
	if err := s.postings.UpdateCostAndStatus(ctx, postingID, cost, domain.PostingSent); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "posting sent",
		slog.String("posting_id", postingID.String()),
		slog.Int("items", len(items)),
		slog.String("cost", cost.String()))

	return nil
}

// CancelPosting releases the reservations of a not-yet-sent posting and opens
// placing tasks to return its items to the shelves. A sent posting cannot be
// canceled; canceling twice is a no-op.
func (s *PostingService) CancelPosting(ctx context.Context, postingID uuid.UUID) error {
	posting, err := s.postings.FindByID(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound)
	}

	switch posting.Status {
	case domain.PostingSent:
		return domain.NewBusinessError("cannot cancel posting %s: already sent", postingID)
	case domain.PostingCanceled:
		s.logger.InfoContext(ctx, "posting already canceled",
			slog.String("posting_id", postingID.String()))
		return nil
	}

	items, err := s.items.FindByPostingID(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to load posting items: %w", err)
	}

	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		for i := range items {
			if err := s.items.SetReservedTx(ctx, tx, items[i].ID, false); err != nil {
				return err
			}

			task := domain.NewTask(domain.TaskPlacing, items[i].ID)
			task.PostingID = &postingID
			if err := s.tasks.CreateTx(ctx, tx, task); err != nil {
				return err
			}
		}
		return s.postings.UpdateStatusTx(ctx, tx, postingID, domain.PostingCanceled)
	})
	if err != nil {
		return fmt.Errorf("failed to cancel posting: %w", err)
	}

	s.logger.InfoContext(ctx, "posting canceled",
		slog.String("posting_id", postingID.String()),
		slog.Int("items_released", len(items)))

	return nil
}

// GetPosting assembles the order view: attached items grouped per sku into
// valid/defect lists, the sku ids of items lost during picking, and a task
// summary.
func (s *PostingService) GetPosting(ctx context.Context, postingID uuid.UUID) (*ports.PostingInfo, error) {
	posting, err := s.postings.FindByID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return nil, fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound)
	}

	items, err := s.items.FindByPostingID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting items: %w", err)
	}

	tasks, err := s.tasks.FindByPostingID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting tasks: %w", err)
	}

	info := &ports.PostingInfo{
		ID:           posting.ID,
		Status:       posting.Status,
		CreatedAt:    posting.CreatedAt,
		Cost:         posting.Cost,
		OrderedGoods: []ports.OrderedGood{},
		NotFound:     []uuid.UUID{},
		Tasks:        make([]ports.TaskSummary, 0, len(tasks)),
	}

	// Group attached items per sku, keeping first-seen order.
	goodsBySku := make(map[uuid.UUID]*ports.OrderedGood)
	var skuOrder []uuid.UUID
	for i := range items {
		item := &items[i]
		good, ok := goodsBySku[item.SkuID]
		if !ok {
			good = &ports.OrderedGood{
				SkuID:         item.SkuID,
				FromValidIDs:  []uuid.UUID{},
				FromDefectIDs: []uuid.UUID{},
			}
			goodsBySku[item.SkuID] = good
			skuOrder = append(skuOrder, item.SkuID)
		}
		switch item.Stock.Status {
		case domain.StockValid:
			good.FromValidIDs = append(good.FromValidIDs, item.ID)
		case domain.StockDefect:
			good.FromDefectIDs = append(good.FromDefectIDs, item.ID)
		}
	}
	for _, skuID := range skuOrder {
		info.OrderedGoods = append(info.OrderedGoods, *goodsBySku[skuID])
	}

	// Items whose picking task was canceled could not be collected; report
	// their skus.
	var lostItemIDs []uuid.UUID
	for _, t := range tasks {
		info.Tasks = append(info.Tasks, ports.TaskSummary{ID: t.ID, Type: t.Type, Status: t.Status})
		if t.Type == domain.TaskPicking && t.Status == domain.TaskCanceled {
			lostItemIDs = append(lostItemIDs, t.ItemID)
		}
	}
	lost, err := s.items.FindByIDs(ctx, lostItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load lost items: %w", err)
	}
	for i := range lost {
		info.NotFound = append(info.NotFound, lost[i].SkuID)
	}

	return info, nil
}
