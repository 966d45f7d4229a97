// internal/core/services/acceptance_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
	"github.com/akozlova/marketplace-be/internal/core/services"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

type acceptanceMocks struct {
	acceptances *mocks.MockAcceptanceRepository
	skus        *mocks.MockSkuRepository
	items       *mocks.MockItemRepository
	tasks       *mocks.MockTaskRepository
	db          *mocks.MockDatabase
	jobs        *mocks.MockJobEnqueuer
}

func newAcceptanceService(t *testing.T) (*services.AcceptanceService, *acceptanceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &acceptanceMocks{
		acceptances: mocks.NewMockAcceptanceRepository(ctrl),
		skus:        mocks.NewMockSkuRepository(ctrl),
		items:       mocks.NewMockItemRepository(ctrl),
		tasks:       mocks.NewMockTaskRepository(ctrl),
		db:          mocks.NewMockDatabase(ctrl),
		jobs:        mocks.NewMockJobEnqueuer(ctrl),
	}

	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	service := services.NewAcceptanceService(
		m.acceptances, m.skus, m.items, m.tasks, m.db, m.jobs, helpers.TestLogger())
	return service, m
}

func TestAcceptanceService_CreateAcceptance(t *testing.T) {
	t.Run("creates_items_stocks_and_placing_tasks", func(t *testing.T) {
		service, m := newAcceptanceService(t)

		skuID := uuid.New()
		groups := []ports.AcceptanceGroup{
			{SkuID: skuID, Stock: domain.StockValid, Count: 2},
			{SkuID: skuID, Stock: domain.StockDefect, Count: 1},
		}

		var acceptanceID uuid.UUID
		m.acceptances.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, a *domain.Acceptance) error {
				acceptanceID = a.ID
				return nil
			})

		// One get-or-create per group, even for the same sku.
		m.skus.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, sku *domain.Sku) error {
				assert.Equal(t, skuID, sku.ID)
				assert.True(t, sku.BasePrice.IsZero())
				return nil
			}).
			Times(2)

		createdStocks := map[domain.StockStatus]int{}
		m.items.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, item *domain.Item) error {
				assert.Equal(t, skuID, item.SkuID)
				require.NotNil(t, item.AcceptanceID)
				createdStocks[item.Stock.Status]++
				return nil
			}).
			Times(3)

		m.tasks.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, task *domain.Task) error {
				assert.Equal(t, domain.TaskPlacing, task.Type)
				assert.Equal(t, domain.TaskInWork, task.Status)
				require.NotNil(t, task.AcceptanceID)
				return nil
			}).
			Times(3)

		m.jobs.EXPECT().
			EnqueueAcceptanceProcessing(gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := service.CreateAcceptance(context.Background(), groups)
		require.NoError(t, err)
		assert.Equal(t, acceptanceID, got)
		assert.Equal(t, 2, createdStocks[domain.StockValid])
		assert.Equal(t, 1, createdStocks[domain.StockDefect])
	})

	t.Run("rejects_out_of_range_counts", func(t *testing.T) {
		service, _ := newAcceptanceService(t)

		for _, count := range []int{0, -1, 1000, 5000} {
			_, err := service.CreateAcceptance(context.Background(), []ports.AcceptanceGroup{
				{SkuID: uuid.New(), Stock: domain.StockValid, Count: count},
			})
			require.Error(t, err, "count %d should be rejected", count)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})

	t.Run("boundary_counts_are_accepted", func(t *testing.T) {
		service, m := newAcceptanceService(t)

		m.acceptances.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.skus.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.items.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tasks.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.jobs.EXPECT().EnqueueAcceptanceProcessing(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.CreateAcceptance(context.Background(), []ports.AcceptanceGroup{
			{SkuID: uuid.New(), Stock: domain.StockValid, Count: 1},
		})
		require.NoError(t, err)
	})

	t.Run("rejects_not_found_as_intake_stock", func(t *testing.T) {
		service, _ := newAcceptanceService(t)

		_, err := service.CreateAcceptance(context.Background(), []ports.AcceptanceGroup{
			{SkuID: uuid.New(), Stock: domain.StockNotFound, Count: 1},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("transaction_failure_aborts", func(t *testing.T) {
		service, m := newAcceptanceService(t)

		m.acceptances.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database connection failed"))

		_, err := service.CreateAcceptance(context.Background(), []ports.AcceptanceGroup{
			{SkuID: uuid.New(), Stock: domain.StockValid, Count: 1},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create acceptance")
	})
}

func TestAcceptanceService_ProcessAcceptance(t *testing.T) {
	acceptanceID := uuid.New()

	t.Run("completes_placing_tasks", func(t *testing.T) {
		service, m := newAcceptanceService(t)

		m.acceptances.EXPECT().
			FindByID(gomock.Any(), acceptanceID).
			Return(&domain.Acceptance{ID: acceptanceID}, nil)
		m.tasks.EXPECT().
			CompletePlacingByAcceptanceID(gomock.Any(), acceptanceID).
			Return(int64(3), nil)

		err := service.ProcessAcceptance(context.Background(), acceptanceID)
		require.NoError(t, err)
	})

	t.Run("missing_acceptance_is_not_found", func(t *testing.T) {
		service, m := newAcceptanceService(t)

		m.acceptances.EXPECT().
			FindByID(gomock.Any(), acceptanceID).
			Return(nil, nil)

		err := service.ProcessAcceptance(context.Background(), acceptanceID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAcceptanceService_GetAcceptanceInfo(t *testing.T) {
	service, m := newAcceptanceService(t)

	acceptanceID := uuid.New()
	skuID := uuid.New()

	itemA := domain.Item{ID: uuid.New(), SkuID: skuID, Stock: domain.Stock{Status: domain.StockValid}}
	itemB := domain.Item{ID: uuid.New(), SkuID: skuID, Stock: domain.Stock{Status: domain.StockValid}}
	itemC := domain.Item{ID: uuid.New(), SkuID: skuID, Stock: domain.Stock{Status: domain.StockDefect}}

	m.acceptances.EXPECT().
		FindByID(gomock.Any(), acceptanceID).
		Return(&domain.Acceptance{ID: acceptanceID, CreatedAt: time.Now().UTC()}, nil)
	m.tasks.EXPECT().
		FindByAcceptanceID(gomock.Any(), acceptanceID).
		Return([]domain.Task{
			{ID: uuid.New(), Type: domain.TaskPlacing, Status: domain.TaskCompleted, ItemID: itemA.ID, AcceptanceID: &acceptanceID},
			{ID: uuid.New(), Type: domain.TaskPlacing, Status: domain.TaskCompleted, ItemID: itemB.ID, AcceptanceID: &acceptanceID},
			{ID: uuid.New(), Type: domain.TaskPlacing, Status: domain.TaskCompleted, ItemID: itemC.ID, AcceptanceID: &acceptanceID},
			// An in-work task does not count towards accepted totals.
			{ID: uuid.New(), Type: domain.TaskPlacing, Status: domain.TaskInWork, ItemID: uuid.New(), AcceptanceID: &acceptanceID},
		}, nil)
	m.items.EXPECT().
		FindByIDs(gomock.Any(), gomock.Any()).
		Return([]domain.Item{itemA, itemB, itemC}, nil)

	info, err := service.GetAcceptanceInfo(context.Background(), acceptanceID)
	require.NoError(t, err)

	assert.Equal(t, acceptanceID, info.ID)
	assert.Len(t, info.Tasks, 4)

	require.Len(t, info.Accepted, 2)
	assert.Equal(t, skuID, info.Accepted[0].SkuID)
	assert.Equal(t, domain.APIStockValid, info.Accepted[0].Stock)
	assert.Equal(t, 2, info.Accepted[0].Count)
	assert.Equal(t, domain.APIStockDefect, info.Accepted[1].Stock)
	assert.Equal(t, 1, info.Accepted[1].Count)
}
