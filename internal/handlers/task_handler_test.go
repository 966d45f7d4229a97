// internal/handlers/task_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
	"github.com/akozlova/marketplace-be/internal/handlers"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

func TestTaskHandler_GetTaskInfo(t *testing.T) {
	taskID := uuid.New()
	stockID := uuid.New()

	tests := []struct {
		name           string
		queryID        string
		setupMocks     func(*mocks.MockTaskService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "returns_task_with_target",
			queryID: taskID.String(),
			setupMocks: func(m *mocks.MockTaskService) {
				m.EXPECT().
					GetTaskInfo(gomock.Any(), taskID).
					Return(&ports.TaskInfo{
						ID:     taskID,
						Status: domain.TaskInWork,
						Type:   domain.TaskPicking,
						Target: ports.TaskTarget{ID: stockID, Stock: "notfound"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var info ports.TaskInfo
				require.NoError(t, json.Unmarshal(body, &info))
				assert.Equal(t, taskID, info.ID)
				assert.Equal(t, stockID, info.Target.ID)
				assert.Equal(t, "notfound", info.Target.Stock)
			},
		},
		{
			name:           "invalid_uuid",
			queryID:        "bad",
			setupMocks:     func(m *mocks.MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "task_not_found",
			queryID: taskID.String(),
			setupMocks: func(m *mocks.MockTaskService) {
				m.EXPECT().
					GetTaskInfo(gomock.Any(), taskID).
					Return(nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTaskService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewTaskHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/task/getTaskInfo?id="+tt.queryID, nil)
			w := httptest.NewRecorder()

			handler.GetTaskInfo(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestTaskHandler_FinishTask(t *testing.T) {
	taskID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockTaskService)
		expectedStatus int
	}{
		{
			name: "completes_task",
			body: fmt.Sprintf(`{"id":%q,"status":"completed"}`, taskID),
			setupMocks: func(m *mocks.MockTaskService) {
				m.EXPECT().
					FinishTask(gomock.Any(), taskID, domain.TaskCompleted).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_json_body",
			body:           `nope`,
			setupMocks:     func(m *mocks.MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid_finish_status",
			body: fmt.Sprintf(`{"id":%q,"status":"in_work"}`, taskID),
			setupMocks: func(m *mocks.MockTaskService) {
				m.EXPECT().
					FinishTask(gomock.Any(), taskID, domain.TaskInWork).
					Return(fmt.Errorf("%w: finish status must be completed or canceled, got %q",
						domain.ErrValidation, domain.TaskInWork))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "terminal_conflict",
			body: fmt.Sprintf(`{"id":%q,"status":"canceled"}`, taskID),
			setupMocks: func(m *mocks.MockTaskService) {
				m.EXPECT().
					FinishTask(gomock.Any(), taskID, domain.TaskCanceled).
					Return(domain.NewBusinessError("cannot finish task %s: already completed", taskID))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTaskService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewTaskHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/task/finishTask", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.FinishTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}
