package handlers

import (
	"context"
	"net/http"

	service "mgnregaapi/services"
	"mgnregaapi/utils"

	"go.uber.org/zap"
)

type StateHandler struct {
	service service.RecordService
	logger  *zap.Logger
}

func NewStateHandler(service service.RecordService, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		service: service,
		logger:  logger,
	}
}

// Overview aggregates the current period across every district that has a
// record so far.
func (h *StateHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	overview, err := h.service.StateOverview(ctx)
	if err != nil {
		h.logger.Error("Failed to build state overview", zap.Error(err))
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "State overview retrieved successfully", overview, http.StatusOK)
}
