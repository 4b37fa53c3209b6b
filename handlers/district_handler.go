package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	service "mgnregaapi/services"
	"mgnregaapi/utils"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type DistrictHandler struct {
	service service.RecordService
	logger  *zap.Logger
}

func NewDistrictHandler(service service.RecordService, logger *zap.Logger) *DistrictHandler {
	return &DistrictHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DistrictHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	districts, err := h.service.GetDistricts(ctx)
	if err != nil {
		h.logger.Error("Failed to list districts", zap.Error(err))
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Districts retrieved successfully", districts, http.StatusOK)
}

func (h *DistrictHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	record, err := h.service.GetCurrent(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrDistrictNotFound) {
			utils.HandleMessageResponse(w, "District not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to resolve current record", zap.String("district_code", code), zap.Error(err))
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Current data retrieved successfully", record, http.StatusOK)
}

func (h *DistrictHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	months := 0 // service applies the 12-month default
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.HandleMessageResponse(w, "Invalid months parameter", http.StatusBadRequest)
			return
		}
		months = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	trends, err := h.service.GetTrends(ctx, code, months)
	if err != nil {
		if errors.Is(err, service.ErrDistrictNotFound) {
			utils.HandleMessageResponse(w, "District not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to assemble trends", zap.String("district_code", code), zap.Error(err))
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Trends retrieved successfully", trends, http.StatusOK)
}

func (h *DistrictHandler) Compare(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("codes")
	if raw == "" {
		utils.HandleMessageResponse(w, "codes query parameter is required", http.StatusBadRequest)
		return
	}
	codes := strings.Split(raw, ",")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	comparison, err := h.service.Compare(ctx, codes)
	if err != nil {
		if errors.Is(err, service.ErrTooManyDistricts) {
			utils.HandleMessageResponse(w, "Maximum 5 districts for comparison", http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to compare districts", zap.Error(err))
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Comparison retrieved successfully", comparison, http.StatusOK)
}
