// internal/core/domain/task.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskType distinguishes shelving work from order-picking work.
type TaskType string

const (
	// TaskPlacing shelves an item (acceptance intake or posting cancellation).
	TaskPlacing TaskType = "placing"
	// TaskPicking collects an item for a posting.
	TaskPicking TaskType = "picking"
)

// TaskStatus is the lifecycle state of a task. Completed and Canceled are
// terminal; a terminal status must never be overwritten with a different one.
type TaskStatus string

const (
	TaskInWork    TaskStatus = "in_work"
	TaskCompleted TaskStatus = "completed"
	TaskCanceled  TaskStatus = "canceled"
)

// IsTerminal reports whether the status ends the task's lifecycle.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted || s == TaskCanceled
}

// Task is a unit of warehouse work bound to exactly one item and to either a
// posting (picking, or placing on cancellation) or an acceptance (placing).
type Task struct {
	ID           uuid.UUID  `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	Type         TaskType   `json:"type"`
	Status       TaskStatus `json:"status"`
	ItemID       uuid.UUID  `json:"item_id"`
	PostingID    *uuid.UUID `json:"posting_id,omitempty"`
	AcceptanceID *uuid.UUID `json:"acceptance_id,omitempty"`
}

// NewTask creates an in-work task for an item. The caller links it to a
// posting or an acceptance.
func NewTask(taskType TaskType, itemID uuid.UUID) *Task {
	return &Task{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Type:      taskType,
		Status:    TaskInWork,
		ItemID:    itemID,
	}
}

// CanFinishWith reports whether the task may transition to the requested
// terminal status. Re-applying the same terminal status is allowed (no-op).
func (t *Task) CanFinishWith(status TaskStatus) error {
	if t.Status.IsTerminal() && t.Status != status {
		return NewBusinessError("cannot finish task %s: already %s", t.ID, t.Status)
	}
	return nil
}
