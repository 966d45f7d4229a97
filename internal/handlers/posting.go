// internal/handlers/posting.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// PostingHandler handles posting-related HTTP requests
type PostingHandler struct {
	service ports.PostingService
	logger  *slog.Logger
}

// NewPostingHandler creates a new posting handler
func NewPostingHandler(service ports.PostingService, logger *slog.Logger) *PostingHandler {
	return &PostingHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "posting")),
	}
}

// CreatePostingRequest represents the request body for creating a posting
type CreatePostingRequest struct {
	OrderedGoods []ports.OrderedGood `json:"ordered_goods"`
}

// Validate validates the create posting request
func (r *CreatePostingRequest) Validate() error {
	if len(r.OrderedGoods) == 0 {
		return fmt.Errorf("ordered_goods must not be empty")
	}
	for _, good := range r.OrderedGoods {
		if len(good.FromValidIDs) == 0 && len(good.FromDefectIDs) == 0 {
			return fmt.Errorf("ordered good %s names no items", good.SkuID)
		}
	}
	return nil
}

// CancelPostingRequest represents the request body for canceling a posting
type CancelPostingRequest struct {
	ID uuid.UUID `json:"id"`
}

// CreatePosting handles POST /api/v1/posting/createPosting
func (h *PostingHandler) CreatePosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	postingID, err := h.service.CreatePosting(ctx, req.OrderedGoods)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "posting created",
		slog.String("posting_id", postingID.String()),
		slog.Int("goods", len(req.OrderedGoods)))

	respondJSON(h.logger, w, http.StatusOK, map[string]uuid.UUID{"id": postingID})
}

// GetPosting handles GET /api/v1/posting/getPosting?id=
func (h *PostingHandler) GetPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postingID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid posting ID format")
		return
	}

	info, err := h.service.GetPosting(ctx, postingID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, info)
}

// CancelPosting handles POST /api/v1/posting/cancelPosting
func (h *PostingHandler) CancelPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CancelPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CancelPosting(ctx, req.ID); err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "posting canceled",
		slog.String("posting_id", req.ID.String()))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}
