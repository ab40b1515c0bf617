package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gspiers/buzzbingo/internal/api/handler"
	"github.com/gspiers/buzzbingo/internal/api/middleware"
	"github.com/gspiers/buzzbingo/internal/services/session"
	"github.com/gspiers/buzzbingo/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.HubManager, cfg.Logger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/board", sessionHandler.NewBoard).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/reset", sessionHandler.ResetMarks).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/toggle", sessionHandler.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/dismiss", sessionHandler.Dismiss).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
