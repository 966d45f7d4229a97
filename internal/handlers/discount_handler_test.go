// internal/handlers/discount_handler_test.go
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
	"github.com/akozlova/marketplace-be/internal/handlers"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

func TestDiscountHandler_CreateDiscount(t *testing.T) {
	discountID := uuid.New()
	skuID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockDiscountService)
		expectedStatus int
	}{
		{
			name: "successfully_creates_discount",
			body: fmt.Sprintf(`{"sku_ids":[%q],"percentage":25}`, skuID),
			setupMocks: func(m *mocks.MockDiscountService) {
				m.EXPECT().
					CreateDiscount(gomock.Any(), []uuid.UUID{skuID}, 25).
					Return(discountID, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_json_body",
			body:           `]`,
			setupMocks:     func(m *mocks.MockDiscountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "percentage_out_of_range",
			body: fmt.Sprintf(`{"sku_ids":[%q],"percentage":100}`, skuID),
			setupMocks: func(m *mocks.MockDiscountService) {
				m.EXPECT().
					CreateDiscount(gomock.Any(), gomock.Any(), 100).
					Return(uuid.Nil, fmt.Errorf("%w: percentage must be between 1 and 99, got 100", domain.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockDiscountService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewDiscountHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/discount/createDiscount", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateDiscount(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestDiscountHandler_GetDiscount(t *testing.T) {
	discountID := uuid.New()
	skuID := uuid.New()

	t.Run("returns_discount_with_sku_ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().
			GetDiscount(gomock.Any(), discountID).
			Return(&domain.Discount{
				ID:         discountID,
				Status:     domain.DiscountFinished,
				Percentage: 40,
				SkuIDs:     []uuid.UUID{skuID},
			}, nil)
		handler := handlers.NewDiscountHandler(mockService, helpers.TestLogger())

		req := httptest.NewRequest("GET", "/api/v1/discount/getDiscount?id="+discountID.String(), nil)
		w := httptest.NewRecorder()

		handler.GetDiscount(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		var response handlers.DiscountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, discountID, response.ID)
		assert.Equal(t, domain.DiscountFinished, response.Status)
		assert.Equal(t, 40, response.Percentage)
		assert.Equal(t, []uuid.UUID{skuID}, response.SkuIDs)
	})

	t.Run("discount_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().
			GetDiscount(gomock.Any(), discountID).
			Return(nil, fmt.Errorf("discount %s: %w", discountID, domain.ErrNotFound))
		handler := handlers.NewDiscountHandler(mockService, helpers.TestLogger())

		req := httptest.NewRequest("GET", "/api/v1/discount/getDiscount?id="+discountID.String(), nil)
		w := httptest.NewRecorder()

		handler.GetDiscount(w, req)

		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})
}

func TestDiscountHandler_CancelDiscount(t *testing.T) {
	discountID := uuid.New()

	t.Run("successfully_cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		mockService.EXPECT().
			CancelDiscount(gomock.Any(), discountID).
			Return(nil)
		handler := handlers.NewDiscountHandler(mockService, helpers.TestLogger())

		body := fmt.Sprintf(`{"id":%q}`, discountID)
		req := httptest.NewRequest("POST", "/api/v1/discount/cancelDiscount", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CancelDiscount(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("invalid_json_body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDiscountService(ctrl)
		handler := handlers.NewDiscountHandler(mockService, helpers.TestLogger())

		req := httptest.NewRequest("POST", "/api/v1/discount/cancelDiscount", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()

		handler.CancelDiscount(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}
