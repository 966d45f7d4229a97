// internal/handlers/discount.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// DiscountHandler handles discount-related HTTP requests
type DiscountHandler struct {
	service ports.DiscountService
	logger  *slog.Logger
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(service ports.DiscountService, logger *slog.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "discount")),
	}
}

// CreateDiscountRequest represents the request body for creating a discount
type CreateDiscountRequest struct {
	SkuIDs     []uuid.UUID `json:"sku_ids"`
	Percentage int         `json:"percentage"`
}

// CancelDiscountRequest represents the request body for finishing a discount
type CancelDiscountRequest struct {
	ID uuid.UUID `json:"id"`
}

// DiscountResponse represents the discount read model returned to clients
type DiscountResponse struct {
	ID         uuid.UUID             `json:"id"`
	Status     domain.DiscountStatus `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
	Percentage int                   `json:"percentage"`
	SkuIDs     []uuid.UUID           `json:"sku_ids"`
}

// CreateDiscount handles POST /api/v1/discount/createDiscount
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	discountID, err := h.service.CreateDiscount(ctx, req.SkuIDs, req.Percentage)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "discount created",
		slog.String("discount_id", discountID.String()),
		slog.Int("percentage", req.Percentage),
		slog.Int("sku_count", len(req.SkuIDs)))

	respondJSON(h.logger, w, http.StatusOK, map[string]uuid.UUID{"id": discountID})
}

// GetDiscount handles GET /api/v1/discount/getDiscount?id=
func (h *DiscountHandler) GetDiscount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	discountID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid discount ID format")
		return
	}

	discount, err := h.service.GetDiscount(ctx, discountID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, DiscountResponse{
		ID:         discount.ID,
		Status:     discount.Status,
		CreatedAt:  discount.CreatedAt,
		Percentage: discount.Percentage,
		SkuIDs:     discount.SkuIDs,
	})
}

// CancelDiscount handles POST /api/v1/discount/cancelDiscount
func (h *DiscountHandler) CancelDiscount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CancelDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CancelDiscount(ctx, req.ID); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "discount canceled",
		slog.String("discount_id", req.ID.String()))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}
