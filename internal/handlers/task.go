// internal/handlers/task.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	service ports.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service ports.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "task")),
	}
}

// FinishTaskRequest represents the request body for finishing a task
type FinishTaskRequest struct {
	ID     uuid.UUID         `json:"id"`
	Status domain.TaskStatus `json:"status"`
}

// GetTaskInfo handles GET /api/v1/task/getTaskInfo?id=
func (h *TaskHandler) GetTaskInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	info, err := h.service.GetTaskInfo(ctx, taskID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, info)
}

// FinishTask handles POST /api/v1/task/finishTask
func (h *TaskHandler) FinishTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FinishTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.FinishTask(ctx, req.ID, req.Status); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "task finished",
		slog.String("task_id", req.ID.String()),
		slog.String("status", string(req.Status)))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}
