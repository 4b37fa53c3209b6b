package routes

import (
	"net/http"

	"mgnregaapi/handlers"
)

func SetupRoutes(
	districtHandler *handlers.DistrictHandler,
	stateHandler *handlers.StateHandler,
	locationHandler *handlers.LocationHandler,
	metaHandler *handlers.MetaHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/{$}", metaHandler.Root)
	mux.HandleFunc("GET /api/health", metaHandler.Health)

	// District routes
	mux.HandleFunc("GET /api/districts", districtHandler.GetDistricts)
	mux.HandleFunc("GET /api/districts/compare", districtHandler.Compare)
	mux.HandleFunc("GET /api/districts/{code}/current", districtHandler.GetCurrent)
	mux.HandleFunc("GET /api/districts/{code}/trends", districtHandler.GetTrends)

	// Location detection
	mux.HandleFunc("POST /api/location/detect", locationHandler.Detect)

	// State-wide aggregates
	mux.HandleFunc("GET /api/state/overview", stateHandler.Overview)

	return mux
}
