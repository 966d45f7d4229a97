// internal/adapters/db/task_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// taskRepository implements ports.TaskRepository
type taskRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *Database, logger *slog.Logger) ports.TaskRepository {
	return &taskRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "task")),
	}
}

const taskColumns = `id, created_at, type, status, item_id, posting_id, acceptance_id`

const insertTaskQuery = `
	INSERT INTO tasks (id, created_at, type, status, item_id, posting_id, acceptance_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserts a task.
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.Exec(ctx, insertTaskQuery,
		task.ID, task.CreatedAt, task.Type, task.Status,
		task.ItemID, task.PostingID, task.AcceptanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.DebugContext(ctx, "task created",
		slog.String("task_id", task.ID.String()),
		slog.String("type", string(task.Type)))

	return nil
}

// CreateTx inserts a task within an existing transaction.
func (r *taskRepository) CreateTx(ctx context.Context, tx pgx.Tx, task *domain.Task) error {
	_, err := tx.Exec(ctx, insertTaskQuery,
		task.ID, task.CreatedAt, task.Type, task.Status,
		task.ItemID, task.PostingID, task.AcceptanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// FindByID retrieves a task by id, or nil when it does not exist.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// FindByPostingID retrieves all tasks of a posting, oldest first.
func (r *taskRepository) FindByPostingID(ctx context.Context, postingID uuid.UUID) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE posting_id = $1 ORDER BY created_at ASC`

	return r.queryTasks(ctx, query, postingID)
}

// FindByAcceptanceID retrieves all tasks of an acceptance, oldest first.
func (r *taskRepository) FindByAcceptanceID(ctx context.Context, acceptanceID uuid.UUID) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE acceptance_id = $1 ORDER BY created_at ASC`

	return r.queryTasks(ctx, query, acceptanceID)
}

// FindActivePickingByItemID retrieves the non-terminal picking tasks
// targeting an item.
func (r *taskRepository) FindActivePickingByItemID(ctx context.Context, itemID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE item_id = $1 AND type = $2 AND status = $3`

	return r.queryTasks(ctx, query, itemID, domain.TaskPicking, domain.TaskInWork)
}

// UpdateStatus transitions a task.
func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	r.logger.DebugContext(ctx, "task status updated",
		slog.String("task_id", id.String()),
		slog.String("status", string(status)))

	return nil
}

// UpdateStatusTx transitions a task within an existing transaction.
func (r *taskRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CompletePlacingByAcceptanceID completes every in-work placing task of an
// acceptance and reports how many were transitioned.
func (r *taskRepository) CompletePlacingByAcceptanceID(ctx context.Context, acceptanceID uuid.UUID) (int64, error) {
	query := `
		UPDATE tasks
		SET status = $2
		WHERE acceptance_id = $1 AND type = $3 AND status = $4`

	tag, err := r.db.Exec(ctx, query,
		acceptanceID, domain.TaskCompleted, domain.TaskPlacing, domain.TaskInWork)
	if err != nil {
		return 0, fmt.Errorf("failed to complete placing tasks: %w", err)
	}

	r.logger.InfoContext(ctx, "placing tasks completed",
		slog.String("acceptance_id", acceptanceID.String()),
		slog.Int64("count", tag.RowsAffected()))

	return tag.RowsAffected(), nil
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	task := &domain.Task{}
	var postingID, acceptanceID pgtype.UUID

	err := row.Scan(
		&task.ID, &task.CreatedAt, &task.Type, &task.Status,
		&task.ItemID, &postingID, &acceptanceID,
	)
	if err != nil {
		return nil, err
	}

	if postingID.Valid {
		v := uuid.UUID(postingID.Bytes)
		task.PostingID = &v
	}
	if acceptanceID.Valid {
		v := uuid.UUID(acceptanceID.Bytes)
		task.AcceptanceID = &v
	}

	return task, nil
}
