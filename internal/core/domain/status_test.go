// internal/core/domain/status_test.go
package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlova/marketplace-be/internal/core/domain"
)

func TestStockStatusToAPI(t *testing.T) {
	tests := []struct {
		status domain.StockStatus
		want   domain.APIStockStatus
	}{
		{domain.StockValid, domain.APIStockValid},
		{domain.StockDefect, domain.APIStockDefect},
		{domain.StockNotFound, domain.APIStockNotFound},
	}

	for _, tt := range tests {
		got, err := domain.StockStatusToAPI(tt.status)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.StockStatusToAPI("Bogus")
	assert.Error(t, err)
}

func TestStockStatusFromAPI(t *testing.T) {
	tests := []struct {
		status domain.APIStockStatus
		want   domain.StockStatus
	}{
		{domain.APIStockValid, domain.StockValid},
		{domain.APIStockDefect, domain.StockDefect},
		{domain.APIStockNotFound, domain.StockNotFound},
	}

	for _, tt := range tests {
		got, err := domain.StockStatusFromAPI(tt.status)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.StockStatusFromAPI("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStockStatusToTaskTarget(t *testing.T) {
	// The task target wire form spells NotFound without an underscore.
	tests := []struct {
		status domain.StockStatus
		want   string
	}{
		{domain.StockValid, "valid"},
		{domain.StockDefect, "defect"},
		{domain.StockNotFound, "notfound"},
	}

	for _, tt := range tests {
		got, err := domain.StockStatusToTaskTarget(tt.status)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAcceptanceStockFromAPI(t *testing.T) {
	got, err := domain.AcceptanceStockFromAPI(domain.APIStockValid)
	require.NoError(t, err)
	assert.Equal(t, domain.StockValid, got)

	got, err = domain.AcceptanceStockFromAPI(domain.APIStockDefect)
	require.NoError(t, err)
	assert.Equal(t, domain.StockDefect, got)

	// Intake cannot place items directly into not_found.
	_, err = domain.AcceptanceStockFromAPI(domain.APIStockNotFound)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPostingStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.PostingInItemPick.IsTerminal())
	assert.True(t, domain.PostingSent.IsTerminal())
	assert.True(t, domain.PostingCanceled.IsTerminal())
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.TaskInWork.IsTerminal())
	assert.True(t, domain.TaskCompleted.IsTerminal())
	assert.True(t, domain.TaskCanceled.IsTerminal())
}

func TestTask_CanFinishWith(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.TaskStatus
		requested domain.TaskStatus
		wantError bool
	}{
		{
			name:      "in_work_to_completed",
			current:   domain.TaskInWork,
			requested: domain.TaskCompleted,
		},
		{
			name:      "in_work_to_canceled",
			current:   domain.TaskInWork,
			requested: domain.TaskCanceled,
		},
		{
			name:      "reapplying_terminal_status_is_allowed",
			current:   domain.TaskCompleted,
			requested: domain.TaskCompleted,
		},
		{
			name:      "completed_to_canceled_is_rejected",
			current:   domain.TaskCompleted,
			requested: domain.TaskCanceled,
			wantError: true,
		},
		{
			name:      "canceled_to_completed_is_rejected",
			current:   domain.TaskCanceled,
			requested: domain.TaskCompleted,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := domain.NewTask(domain.TaskPicking, uuid.New())
			task.Status = tt.current

			err := task.CanFinishWith(tt.requested)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, domain.IsBusinessError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
