// internal/handlers/acceptance_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
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

func TestAcceptanceHandler_CreateAcceptance(t *testing.T) {
	acceptanceID := uuid.New()
	skuID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockAcceptanceService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_creates_acceptance",
			body: fmt.Sprintf(`{"items_to_accept":[{"sku_id":%q,"stock":"valid","count":5}]}`, skuID),
			setupMocks: func(m *mocks.MockAcceptanceService) {
				m.EXPECT().
					CreateAcceptance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, groups []ports.AcceptanceGroup) (uuid.UUID, error) {
						require.Len(t, groups, 1)
						assert.Equal(t, skuID, groups[0].SkuID)
						assert.Equal(t, domain.StockValid, groups[0].Stock)
						assert.Equal(t, 5, groups[0].Count)
						return acceptanceID, nil
					})
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]uuid.UUID
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, acceptanceID, response["id"])
			},
		},
		{
			name:           "invalid_json_body",
			body:           `{{`,
			setupMocks:     func(m *mocks.MockAcceptanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty_intake",
			body:           `{"items_to_accept":[]}`,
			setupMocks:     func(m *mocks.MockAcceptanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not_found_stock_is_rejected",
			body:           fmt.Sprintf(`{"items_to_accept":[{"sku_id":%q,"stock":"not_found","count":1}]}`, skuID),
			setupMocks:     func(m *mocks.MockAcceptanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "count_validation_surfaces_as_bad_request",
			body: fmt.Sprintf(`{"items_to_accept":[{"sku_id":%q,"stock":"defect","count":1000}]}`, skuID),
			setupMocks: func(m *mocks.MockAcceptanceService) {
				m.EXPECT().
					CreateAcceptance(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, fmt.Errorf("%w: count must be between 1 and 999, got 1000", domain.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockAcceptanceService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewAcceptanceHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/acceptance/createAcceptance", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateAcceptance(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestAcceptanceHandler_GetAcceptanceInfo(t *testing.T) {
	acceptanceID := uuid.New()
	skuID := uuid.New()

	tests := []struct {
		name           string
		queryID        string
		setupMocks     func(*mocks.MockAcceptanceService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "returns_acceptance_info",
			queryID: acceptanceID.String(),
			setupMocks: func(m *mocks.MockAcceptanceService) {
				m.EXPECT().
					GetAcceptanceInfo(gomock.Any(), acceptanceID).
					Return(&ports.AcceptanceInfo{
						ID: acceptanceID,
						Accepted: []ports.AcceptedGroup{
							{SkuID: skuID, Stock: domain.APIStockValid, Count: 3},
						},
						Tasks: []ports.TaskSummary{
							{ID: uuid.New(), Status: domain.TaskCompleted},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var info ports.AcceptanceInfo
				require.NoError(t, json.Unmarshal(body, &info))
				assert.Equal(t, acceptanceID, info.ID)
				require.Len(t, info.Accepted, 1)
				assert.Equal(t, 3, info.Accepted[0].Count)
			},
		},
		{
			name:           "invalid_uuid",
			queryID:        "nope",
			setupMocks:     func(m *mocks.MockAcceptanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "acceptance_not_found",
			queryID: acceptanceID.String(),
			setupMocks: func(m *mocks.MockAcceptanceService) {
				m.EXPECT().
					GetAcceptanceInfo(gomock.Any(), acceptanceID).
					Return(nil, fmt.Errorf("acceptance %s: %w", acceptanceID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockAcceptanceService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewAcceptanceHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/acceptance/getAcceptanceInfo?id="+tt.queryID, nil)
			w := httptest.NewRecorder()

			handler.GetAcceptanceInfo(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
