package handlers

import (
	"context"
	"net/http"

	"mgnregaapi/models"
	service "mgnregaapi/services"
	"mgnregaapi/utils"

	"go.uber.org/zap"
)

type LocationHandler struct {
	service service.LocationService
	logger  *zap.Logger
}

func NewLocationHandler(service service.LocationService, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger,
	}
}

// Detect resolves posted coordinates to a district. Geocoder failures are
// reported inside the response body with success=false, always as HTTP 200.
func (h *LocationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result := h.service.Detect(ctx, req.Latitude, req.Longitude)
	utils.HandleJSONResponse(w, result, http.StatusOK)
}
