// internal/core/services/task.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// TaskService manages warehouse task transitions.
type TaskService struct {
	tasks  ports.TaskRepository
	items  ports.ItemRepository
	logger *slog.Logger
}

// Statically assert that *TaskService implements the service port.
var _ ports.TaskService = (*TaskService)(nil)

// NewTaskService creates a new task service
func NewTaskService(tasks ports.TaskRepository, items ports.ItemRepository, logger *slog.Logger) *TaskService {
	return &TaskService{
		tasks:  tasks,
		items:  items,
		logger: logger.With(slog.String("service", "task")),
	}
}

// FinishTask closes a task as completed or canceled. Re-applying the current
// terminal status is a no-op; switching between terminal statuses is a
// business-rule violation.
func (s *TaskService) FinishTask(ctx context.Context, taskID uuid.UUID, status domain.TaskStatus) error {
	if status != domain.TaskCompleted && status != domain.TaskCanceled {
		return fmt.Errorf("%w: finish status must be completed or canceled, got %q",
			domain.ErrValidation, status)
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load task: %w", err)
	}
	if task == nil {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	if err := task.CanFinishWith(status); err != nil {
		return err
	}
	if task.Status == status {
		return nil
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task finished",
		slog.String("task_id", taskID.String()),
		slog.String("status", string(status)))

	return nil
}

// GetTaskInfo retrieves a task together with a snapshot of the stock record
// it targets.
func (s *TaskService) GetTaskInfo(ctx context.Context, taskID uuid.UUID) (*ports.TaskInfo, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	item, err := s.items.FindByID(ctx, task.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %s of task %s: %w", task.ItemID, taskID, domain.ErrNotFound)
	}

	stock, err := domain.StockStatusToTaskTarget(item.Stock.Status)
	if err != nil {
		return nil, err
	}

	return &ports.TaskInfo{
		ID:        task.ID,
		Status:    task.Status,
		CreatedAt: task.CreatedAt,
		Type:      task.Type,
		Target: ports.TaskTarget{
			ID:    item.Stock.ID,
			Stock: stock,
		},
		PostingID: task.PostingID,
	}, nil
}
