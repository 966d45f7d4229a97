// internal/handlers/posting_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
	"github.com/akozlova/marketplace-be/internal/handlers"
	"github.com/akozlova/marketplace-be/test/helpers"
	"github.com/akozlova/marketplace-be/test/mocks"
)

func TestPostingHandler_CreatePosting(t *testing.T) {
	postingID := uuid.New()
	skuID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockPostingService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_creates_posting",
			body: fmt.Sprintf(`{"ordered_goods":[{"sku":%q,"from_valid_ids":[%q],"from_defect_ids":[]}]}`,
				skuID, itemID),
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					CreatePosting(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, goods []ports.OrderedGood) (uuid.UUID, error) {
						require.Len(t, goods, 1)
						assert.Equal(t, skuID, goods[0].SkuID)
						assert.Equal(t, []uuid.UUID{itemID}, goods[0].FromValidIDs)
						return postingID, nil
					})
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]uuid.UUID
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, postingID, response["id"])
			},
		},
		{
			name:           "invalid_json_body",
			body:           `{not json`,
			setupMocks:     func(m *mocks.MockPostingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty_ordered_goods",
			body:           `{"ordered_goods":[]}`,
			setupMocks:     func(m *mocks.MockPostingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "good_without_items",
			body: fmt.Sprintf(`{"ordered_goods":[{"sku":%q,"from_valid_ids":[],"from_defect_ids":[]}]}`, skuID),
			setupMocks: func(m *mocks.MockPostingService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_error",
			body: fmt.Sprintf(`{"ordered_goods":[{"sku":%q,"from_valid_ids":[%q]}]}`, skuID, itemID),
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					CreatePosting(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "internal server error", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockPostingService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewPostingHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/posting/createPosting", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreatePosting(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestPostingHandler_GetPosting(t *testing.T) {
	postingID := uuid.New()

	tests := []struct {
		name           string
		queryID        string
		setupMocks     func(*mocks.MockPostingService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "returns_posting_info",
			queryID: postingID.String(),
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					GetPosting(gomock.Any(), postingID).
					Return(&ports.PostingInfo{
						ID:     postingID,
						Status: domain.PostingSent,
						Cost:   decimal.NewFromFloat(249.99),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var info ports.PostingInfo
				require.NoError(t, json.Unmarshal(body, &info))
				assert.Equal(t, postingID, info.ID)
				assert.Equal(t, domain.PostingSent, info.Status)
				assert.True(t, info.Cost.Equal(decimal.NewFromFloat(249.99)))
			},
		},
		{
			name:           "invalid_uuid",
			queryID:        "not-a-uuid",
			setupMocks:     func(m *mocks.MockPostingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "posting_not_found",
			queryID: postingID.String(),
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					GetPosting(gomock.Any(), postingID).
					Return(nil, fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockPostingService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewPostingHandler(mockService, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/posting/getPosting?id="+tt.queryID, nil)
			w := httptest.NewRecorder()

			handler.GetPosting(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestPostingHandler_CancelPosting(t *testing.T) {
	postingID := uuid.New()

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockPostingService)
		expectedStatus int
	}{
		{
			name: "successfully_cancels",
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					CancelPosting(gomock.Any(), postingID).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "sent_posting_is_a_conflict",
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					CancelPosting(gomock.Any(), postingID).
					Return(domain.NewBusinessError("cannot cancel posting %s: already sent", postingID))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "posting_not_found",
			setupMocks: func(m *mocks.MockPostingService) {
				m.EXPECT().
					CancelPosting(gomock.Any(), postingID).
					Return(fmt.Errorf("posting %s: %w", postingID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockPostingService(ctrl)
			tt.setupMocks(mockService)
			handler := handlers.NewPostingHandler(mockService, helpers.TestLogger())

			body := fmt.Sprintf(`{"id":%q}`, postingID)
			req := httptest.NewRequest("POST", "/api/v1/posting/cancelPosting", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			handler.CancelPosting(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}
