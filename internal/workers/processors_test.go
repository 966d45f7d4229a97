// internal/workers/processors_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/workers"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

func newTask(t *testing.T, taskType string, payload interface{}) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(taskType, b)
}

func TestFulfillmentProcessor_ProcessPosting(t *testing.T) {
	postingID := uuid.New()

	t.Run("fulfills_posting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockPostingService(ctrl)
		mockService.EXPECT().
			ProcessPickingPosting(gomock.Any(), postingID).
			Return(nil)

		processor := workers.NewFulfillmentProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypePostingFulfill, workers.PostingFulfillPayload{PostingID: postingID})

		err := processor.ProcessPosting(context.Background(), task)
		require.NoError(t, err)
	})

	t.Run("malformed_payload_skips_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockPostingService(ctrl)
		processor := workers.NewFulfillmentProcessor(mockService, helpers.TestLogger())

		err := processor.ProcessPosting(context.Background(),
			asynq.NewTask(workers.TypePostingFulfill, []byte("not json")))
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("missing_posting_skips_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockPostingService(ctrl)
		mockService.EXPECT().
			ProcessPickingPosting(gomock.Any(), postingID).
			Return(fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound))

		processor := workers.NewFulfillmentProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypePostingFulfill, workers.PostingFulfillPayload{PostingID: postingID})

		err := processor.ProcessPosting(context.Background(), task)
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("transient_failure_is_retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockPostingService(ctrl)
		mockService.EXPECT().
			ProcessPickingPosting(gomock.Any(), postingID).
			Return(errors.New("database connection failed"))

		processor := workers.NewFulfillmentProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypePostingFulfill, workers.PostingFulfillPayload{PostingID: postingID})

		err := processor.ProcessPosting(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestAcceptanceProcessor_ProcessAcceptance(t *testing.T) {
	acceptanceID := uuid.New()

	t.Run("processes_acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAcceptanceService(ctrl)
		mockService.EXPECT().
			ProcessAcceptance(gomock.Any(), acceptanceID).
			Return(nil)

		processor := workers.NewAcceptanceProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypeAcceptanceProcess, workers.AcceptanceProcessPayload{AcceptanceID: acceptanceID})

		err := processor.ProcessAcceptance(context.Background(), task)
		require.NoError(t, err)
	})

	t.Run("missing_acceptance_skips_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAcceptanceService(ctrl)
		mockService.EXPECT().
			ProcessAcceptance(gomock.Any(), acceptanceID).
			Return(fmt.Errorf("acceptance %s: %w", acceptanceID, domain.ErrNotFound))

		processor := workers.NewAcceptanceProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypeAcceptanceProcess, workers.AcceptanceProcessPayload{AcceptanceID: acceptanceID})

		err := processor.ProcessAcceptance(context.Background(), task)
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestRepricingProcessor_RepriceSkus(t *testing.T) {
	skuA := uuid.New()
	skuB := uuid.New()

	t.Run("reprices_every_sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().UpdateSkuActualPrice(gomock.Any(), skuA).Return(nil)
		mockService.EXPECT().UpdateSkuActualPrice(gomock.Any(), skuB).Return(nil)

		processor := workers.NewRepricingProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypeSkuReprice, workers.SkuRepricePayload{SkuIDs: []uuid.UUID{skuA, skuB}})

		err := processor.RepriceSkus(context.Background(), task)
		require.NoError(t, err)
	})

	t.Run("vanished_sku_is_skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().
			UpdateSkuActualPrice(gomock.Any(), skuA).
			Return(fmt.Errorf("sku %s: %w", skuA, domain.ErrNotFound))
		mockService.EXPECT().UpdateSkuActualPrice(gomock.Any(), skuB).Return(nil)

		processor := workers.NewRepricingProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypeSkuReprice, workers.SkuRepricePayload{SkuIDs: []uuid.UUID{skuA, skuB}})

		err := processor.RepriceSkus(context.Background(), task)
		require.NoError(t, err)
	})

	t.Run("hard_failure_is_reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().
			UpdateSkuActualPrice(gomock.Any(), skuA).
			Return(errors.New("database connection failed"))

		processor := workers.NewRepricingProcessor(mockService, helpers.TestLogger())
		task := newTask(t, workers.TypeSkuReprice, workers.SkuRepricePayload{SkuIDs: []uuid.UUID{skuA}})

		err := processor.RepriceSkus(context.Background(), task)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reprice 1 of 1 skus")
	})
}
