// internal/handlers/acceptance.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// AcceptanceHandler handles acceptance-related HTTP requests
type AcceptanceHandler struct {
	service ports.AcceptanceService
	logger  *slog.Logger
}

// NewAcceptanceHandler creates a new acceptance handler
func NewAcceptanceHandler(service ports.AcceptanceService, logger *slog.Logger) *AcceptanceHandler {
	return &AcceptanceHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "acceptance")),
	}
}

// CreateAcceptanceRequest represents the request body for creating an acceptance
type CreateAcceptanceRequest struct {
	ItemsToAccept []AcceptanceStockGroup `json:"items_to_accept"`
}

// AcceptanceStockGroup is one intake line in the request body
type AcceptanceStockGroup struct {
	SkuID uuid.UUID             `json:"sku_id"`
	Stock domain.APIStockStatus `json:"stock"`
	Count int                   `json:"count"`
}

// Validate validates the create acceptance request
func (r *CreateAcceptanceRequest) Validate() error {
	if len(r.ItemsToAccept) == 0 {
		return fmt.Errorf("items_to_accept must not be empty")
	}
	return nil
}

// ToGroups converts the request lines to service intake groups.
func (r *CreateAcceptanceRequest) ToGroups() ([]ports.AcceptanceGroup, error) {
	groups := make([]ports.AcceptanceGroup, 0, len(r.ItemsToAccept))
	for _, line := range r.ItemsToAccept {
		status, err := domain.AcceptanceStockFromAPI(line.Stock)
		if err != nil {
			return nil, err
		}
		groups = append(groups, ports.AcceptanceGroup{
			SkuID: line.SkuID,
			Stock: status,
			Count: line.Count,
		})
	}
	return groups, nil
}

// CreateAcceptance handles POST /api/v1/acceptance/createAcceptance
func (h *AcceptanceHandler) CreateAcceptance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAcceptanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := req.ToGroups()
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	acceptanceID, err := h.service.CreateAcceptance(ctx, groups)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "acceptance created",
		slog.String("acceptance_id", acceptanceID.String()),
		slog.Int("groups", len(groups)))

	respondJSON(h.logger, w, http.StatusOK, map[string]uuid.UUID{"id": acceptanceID})
}

// GetAcceptanceInfo handles GET /api/v1/acceptance/getAcceptanceInfo?id=
func (h *AcceptanceHandler) GetAcceptanceInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	acceptanceID, err := parseIDQuery(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid acceptance ID format")
		return
	}

	info, err := h.service.GetAcceptanceInfo(ctx, acceptanceID)
	if err != nil {
		respondServiceError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, info)
}
