// internal/handlers/sku.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// SkuHandler handles sku and item HTTP requests
type SkuHandler struct {
	service ports.SkuService
	logger  *slog.Logger
}

// NewSkuHandler creates a new sku handler
func NewSkuHandler(service ports.SkuService, logger *slog.Logger) *SkuHandler {
	return &SkuHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "sku")),
	}
}

// GetSkuInfoResponse represents the sku read model returned to clients
type GetSkuInfoResponse struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	ActualPrice decimal.Decimal `json:"actual_price"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Count       int             `json:"count"`
	IsHidden    bool            `json:"is_hidden"`
}

// GetItemInfoBySkuIDResponse wraps the item list for one sku
type GetItemInfoBySkuIDResponse struct {
	Items []ports.ItemInfo `json:"items"`
}

// MarkdownItemRequest represents the request body for marking down an item
type MarkdownItemRequest struct {
	ID         uuid.UUID       `json:"id"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SetSkuPriceRequest represents the request body for setting a base price
type SetSkuPriceRequest struct {
	SkuID     uuid.UUID       `json:"sku_id"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// ToggleIsHiddenRequest represents the request body for hiding or showing a sku
type ToggleIsHiddenRequest struct {
	SkuID    uuid.UUID `json:"sku_id"`
	IsHidden bool      `json:"is_hidden"`
}

// MoveToNotFoundRequest represents the request body for writing off an item
type MoveToNotFoundRequest struct {
	ID uuid.UUID `json:"id"`
}

// GetSkuInfo handles GET /api/v1/sku/getSkuInfo?id=
func (h *SkuHandler) GetSkuInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid sku ID format")
		return
	}

	sku, err := h.service.GetSkuInfo(ctx, skuID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toSkuInfoResponse(sku))
}

// GetItemInfo handles GET /api/v1/sku/getItemInfo?id=
func (h *SkuHandler) GetItemInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	info, err := h.service.GetItemInfo(ctx, itemID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, info)
}

// GetItemInfoBySkuID handles GET /api/v1/sku/getItemInfoBySkuId?id=
func (h *SkuHandler) GetItemInfoBySkuID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid sku ID format")
		return
	}

	items, err := h.service.GetItemInfoBySkuID(ctx, skuID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, GetItemInfoBySkuIDResponse{Items: items})
}

// MarkdownItem handles POST /api/v1/sku/markdownItem
func (h *SkuHandler) MarkdownItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MarkdownItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.MarkdownItem(ctx, req.ID, req.Percentage); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "item marked down",
		slog.String("item_id", req.ID.String()),
		slog.String("percentage", req.Percentage.String()))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetSkuPrice handles POST /api/v1/sku/setSkuPrice
func (h *SkuHandler) SetSkuPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetSkuPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetSkuPrice(ctx, req.SkuID, req.BasePrice); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

// ToggleIsHidden handles POST /api/v1/sku/toggleIsHidden
func (h *SkuHandler) ToggleIsHidden(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ToggleIsHiddenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ToggleIsHidden(ctx, req.SkuID, req.IsHidden); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

// MoveToNotFound handles POST /api/v1/sku/moveToNotFound
func (h *SkuHandler) MoveToNotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MoveToNotFoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.MoveItemToNotFound(ctx, req.ID); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "item moved to not found",
		slog.String("item_id", req.ID.String()))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

func toSkuInfoResponse(sku *domain.Sku) GetSkuInfoResponse {
	return GetSkuInfoResponse{
		ID:          sku.ID,
		CreatedAt:   sku.CreatedAt,
		ActualPrice: sku.ActualPrice,
		BasePrice:   sku.BasePrice,
		Count:       sku.Count,
		IsHidden:    sku.IsHidden,
	}
}
