// internal/core/services/sku_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/services"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

type skuMocks struct {
	skus     *mocks.MockSkuRepository
	items    *mocks.MockItemRepository
	tasks    *mocks.MockTaskRepository
	postings *mocks.MockPostingRepository
	db       *mocks.MockDatabase
	cache    *mocks.MockCacheRepository
}

func newSkuService(t *testing.T) (*services.SkuService, *skuMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &skuMocks{
		skus:     mocks.NewMockSkuRepository(ctrl),
		items:    mocks.NewMockItemRepository(ctrl),
		tasks:    mocks.NewMockTaskRepository(ctrl),
		postings: mocks.NewMockPostingRepository(ctrl),
		db:       mocks.NewMockDatabase(ctrl),
		cache:    mocks.NewMockCacheRepository(ctrl),
	}

	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	service := services.NewSkuService(
		m.skus, m.items, m.tasks, m.postings, m.db, m.cache, helpers.TestLogger())
	return service, m
}

// passThroughGetOrSet wires the cache mock to always miss and serve the fetch
// result into dest, like the real cache does on a cold key.
func passThroughGetOrSet(m *mocks.MockCacheRepository) {
	m.EXPECT().
		GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}, fetch func() (interface{}, error), _ time.Duration) error {
			v, err := fetch()
			if err != nil {
				return err
			}
			*dest.(*domain.Sku) = *v.(*domain.Sku)
			return nil
		})
}

func TestSkuService_GetSkuInfo(t *testing.T) {
	t.Run("loads_sku_through_cache", func(t *testing.T) {
		service, m := newSkuService(t)

		sku := helpers.CreateTestSku()
		passThroughGetOrSet(m.cache)
		m.skus.EXPECT().
			FindByID(gomock.Any(), sku.ID).
			Return(sku, nil)

		got, err := service.GetSkuInfo(context.Background(), sku.ID)
		require.NoError(t, err)
		assert.Equal(t, sku.ID, got.ID)
		assert.True(t, got.BasePrice.Equal(sku.BasePrice))
	})

	t.Run("missing_sku_is_not_found", func(t *testing.T) {
		service, m := newSkuService(t)

		skuID := uuid.New()
		passThroughGetOrSet(m.cache)
		m.skus.EXPECT().
			FindByID(gomock.Any(), skuID).
			Return(nil, nil)

		_, err := service.GetSkuInfo(context.Background(), skuID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSkuService_GetItemInfo(t *testing.T) {
	service, m := newSkuService(t)

	itemID := uuid.New()
	skuID := uuid.New()
	m.items.EXPECT().
		FindByID(gomock.Any(), itemID).
		Return(&domain.Item{
			ID:    itemID,
			SkuID: skuID,
			Stock: domain.Stock{ID: uuid.New(), ItemID: itemID, Status: domain.StockDefect, IsReserved: true},
		}, nil)

	info, err := service.GetItemInfo(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, itemID, info.ID)
	assert.Equal(t, skuID, info.SkuID)
	assert.Equal(t, domain.APIStockDefect, info.Stock)
	assert.True(t, info.Reserved)
}

func TestSkuService_GetItemInfoBySkuID(t *testing.T) {
	service, m := newSkuService(t)

	skuID := uuid.New()
	m.items.EXPECT().
		FindBySkuID(gomock.Any(), skuID, gomock.Any()).
		Return([]domain.Item{
			{ID: uuid.New(), SkuID: skuID, Stock: domain.Stock{Status: domain.StockValid}},
			{ID: uuid.New(), SkuID: skuID, Stock: domain.Stock{Status: domain.StockNotFound}},
		}, nil)

	infos, err := service.GetItemInfoBySkuID(context.Background(), skuID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, domain.APIStockValid, infos[0].Stock)
	assert.Equal(t, domain.APIStockNotFound, infos[1].Stock)
}

func TestSkuService_MarkdownItem(t *testing.T) {
	itemID := uuid.New()
	postingID := uuid.New()

	t.Run("records_defect_discount", func(t *testing.T) {
		service, m := newSkuService(t)

		m.items.EXPECT().
			FindByID(gomock.Any(), itemID).
			Return(&domain.Item{ID: itemID, Stock: domain.Stock{Status: domain.StockDefect}}, nil)
		m.tasks.EXPECT().
			FindActivePickingByItemID(gomock.Any(), itemID).
			Return(nil, nil)
		m.items.EXPECT().
			CreateItemDiscount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.ItemDiscount) error {
				assert.Equal(t, itemID, d.ItemID)
				assert.Equal(t, domain.ItemDiscountByDefect, d.Type)
				assert.Equal(t, 15, d.Percentage)
				return nil
			})

		err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(0.15))
		require.NoError(t, err)
	})

	t.Run("requeues_active_pick_while_posting_is_assembling", func(t *testing.T) {
		service, m := newSkuService(t)

		task := domain.Task{
			ID:        uuid.New(),
			Type:      domain.TaskPicking,
			Status:    domain.TaskInWork,
			ItemID:    itemID,
			PostingID: &postingID,
		}

		m.items.EXPECT().
			FindByID(gomock.Any(), itemID).
			Return(&domain.Item{ID: itemID, Stock: domain.Stock{Status: domain.StockValid}}, nil)
		m.tasks.EXPECT().
			FindActivePickingByItemID(gomock.Any(), itemID).
			Return([]domain.Task{task}, nil)
		m.items.EXPECT().
			CreateItemDiscount(gomock.Any(), gomock.Any()).
			Return(nil)
		m.postings.EXPECT().
			FindByID(gomock.Any(), postingID).
			Return(&domain.Posting{ID: postingID, Status: domain.PostingInItemPick}, nil)
		m.tasks.EXPECT().
			UpdateStatusTx(gomock.Any(), gomock.Any(), task.ID, domain.TaskCanceled).
			Return(nil)
		m.tasks.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, replacement *domain.Task) error {
				assert.Equal(t, domain.TaskPicking, replacement.Type)
				assert.Equal(t, itemID, replacement.ItemID)
				require.NotNil(t, replacement.PostingID)
				assert.Equal(t, postingID, *replacement.PostingID)
				return nil
			})

		err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(0.3))
		require.NoError(t, err)
	})

	t.Run("skips_requeue_when_posting_already_sent", func(t *testing.T) {
		service, m := newSkuService(t)

		task := domain.Task{
			ID:        uuid.New(),
			Type:      domain.TaskPicking,
			Status:    domain.TaskInWork,
			ItemID:    itemID,
			PostingID: &postingID,
		}

		m.items.EXPECT().
			FindByID(gomock.Any(), itemID).
			Return(&domain.Item{ID: itemID, Stock: domain.Stock{Status: domain.StockValid}}, nil)
		m.tasks.EXPECT().
			FindActivePickingByItemID(gomock.Any(), itemID).
			Return([]domain.Task{task}, nil)
		m.items.EXPECT().
			CreateItemDiscount(gomock.Any(), gomock.Any()).
			Return(nil)
		m.postings.EXPECT().
			FindByID(gomock.Any(), postingID).
			Return(&domain.Posting{ID: postingID, Status: domain.PostingSent}, nil)

		err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(0.2))
		require.NoError(t, err)
	})

	t.Run("multiple_active_picks_is_a_conflict", func(t *testing.T) {
		service, m := newSkuService(t)

		m.items.EXPECT().
			FindByID(gomock.Any(), itemID).
			Return(&domain.Item{ID: itemID, Stock: domain.Stock{Status: domain.StockValid}}, nil)
		m.tasks.EXPECT().
			FindActivePickingByItemID(gomock.Any(), itemID).
			Return([]domain.Task{
				{ID: uuid.New(), Status: domain.TaskInWork},
				{ID: uuid.New(), Status: domain.TaskInWork},
			}, nil)

		err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(0.1))
		require.Error(t, err)
		assert.True(t, domain.IsBusinessError(err))
	})

	t.Run("rejects_fraction_out_of_range", func(t *testing.T) {
		service, _ := newSkuService(t)

		for _, pct := range []float64{-0.1, 1.01, 2} {
			err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(pct))
			require.Error(t, err, "fraction %v should be rejected", pct)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})

	t.Run("missing_item_is_not_found", func(t *testing.T) {
		service, m := newSkuService(t)

		m.items.EXPECT().
			FindByID(gomock.Any(), itemID).
			Return(nil, nil)

		err := service.MarkdownItem(context.Background(), itemID, decimal.NewFromFloat(0.5))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSkuService_SetSkuPrice(t *testing.T) {
	skuID := uuid.New()

	t.Run("sets_base_price_and_invalidates_cache", func(t *testing.T) {
		service, m := newSkuService(t)

		price := decimal.NewFromFloat(249.99)
		m.skus.EXPECT().
			SetBasePrice(gomock.Any(), skuID, price).
			Return(nil)
		m.cache.EXPECT().
			Delete(gomock.Any(), "sku:info:"+skuID.String()).
			Return(nil)

		err := service.SetSkuPrice(context.Background(), skuID, price)
		require.NoError(t, err)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		service, _ := newSkuService(t)

		err := service.SetSkuPrice(context.Background(), skuID, decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("repository_failure_surfaces", func(t *testing.T) {
		service, m := newSkuService(t)

		m.skus.EXPECT().
			SetBasePrice(gomock.Any(), skuID, gomock.Any()).
			Return(errors.New("database connection failed"))

		err := service.SetSkuPrice(context.Background(), skuID, decimal.NewFromInt(10))
		require.Error(t, err)
	})
}

func TestSkuService_ToggleIsHidden(t *testing.T) {
	service, m := newSkuService(t)

	skuID := uuid.New()
	m.skus.EXPECT().
		SetHidden(gomock.Any(), skuID, true).
		Return(nil)
	m.cache.EXPECT().
		Delete(gomock.Any(), "sku:info:"+skuID.String()).
		Return(nil)

	err := service.ToggleIsHidden(context.Background(), skuID, true)
	require.NoError(t, err)
}

func TestSkuService_MoveItemToNotFound(t *testing.T) {
	service, m := newSkuService(t)

	itemID := uuid.New()
	m.items.EXPECT().
		SetStockStatus(gomock.Any(), itemID, domain.StockNotFound).
		Return(nil)

	err := service.MoveItemToNotFound(context.Background(), itemID)
	require.NoError(t, err)
}
