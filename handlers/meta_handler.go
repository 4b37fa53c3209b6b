package handlers

import (
	"context"
	"net/http"

	"mgnregaapi/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MetaHandler struct {
	client *mongo.Client
	logger *zap.Logger
}

func NewMetaHandler(client *mongo.Client, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		client: client,
		logger: logger,
	}
}

func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.HandleMessageResponse(w, "MGNREGA Data API - Uttar Pradesh", http.StatusOK)
}

type healthResponse struct {
	Status   string `json:"status"`
	DBStatus string `json:"db_status"`
	Error    string `json:"error,omitempty"`
}

// Health reports process liveness and the state of the Mongo connection.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response := healthResponse{Status: "ok", DBStatus: "connected"}
	statusCode := http.StatusOK

	if err := h.client.Ping(ctx, nil); err != nil {
		h.logger.Warn("Health check ping failed", zap.Error(err))
		response.Status = "error"
		response.DBStatus = "connection_error"
		response.Error = err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	utils.HandleJSONResponse(w, response, statusCode)
}
