package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/players/internal/api/apierr"
	"github.com/mcoot/players/internal/api/handler"
	"github.com/mcoot/players/internal/api/response"
	"github.com/mcoot/players/internal/middleware"
	"github.com/mcoot/players/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Roster *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Roster, cfg.Logger)

	// Common middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	// Player routes; the squad number route is registered before /{id}
	players := r.PathPrefix("/players").Subrouter()
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("/", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("/squadNumber/{squadNumber}", playerHandler.GetBySquadNumber).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPut)
	players.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

// apiPanicHandler answers a recovered panic with the standard JSON error body
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
