package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gspiers/buzzbingo/internal/api/request"
	"github.com/gspiers/buzzbingo/internal/api/response"
	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/services/session"
	"github.com/gspiers/buzzbingo/internal/sse"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	controller  *session.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller, hubManager *sse.HubManager, logger *slog.Logger) *SessionHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &SessionHandler{
		controller:  controller,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

func (h *SessionHandler) broadcast(events []model.Event) {
	if h.broadcaster != nil && len(events) > 0 {
		h.broadcaster.BroadcastEvents(events)
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, events, err := h.controller.CreateSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(events)
	response.JSON(w, http.StatusCreated, response.SessionStateFromModel(s))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, err := h.controller.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.controller.DeleteSession(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastSessionDeleted(id)
	}
	response.NoContent(w)
}

// NewBoard handles POST /api/v1/sessions/{id}/board
func (h *SessionHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, events, err := h.controller.NewBoard(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(events)
	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// ResetMarks handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) ResetMarks(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, events, err := h.controller.ResetMarks(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(events)
	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// Toggle handles POST /api/v1/sessions/{id}/toggle
func (h *SessionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}

	// The core treats out-of-range toggles as no-ops; at the transport
	// edge they are a client bug, so reject them with feedback.
	if !pos.InBounds() {
		WriteError(w, model.ErrInvalidPosition)
		return
	}

	s, events, err := h.controller.Toggle(r.Context(), id, pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(events)
	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// Dismiss handles POST /api/v1/sessions/{id}/dismiss
func (h *SessionHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, events, err := h.controller.Dismiss(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(events)
	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// Events handles GET /api/v1/sessions/{id}/events (SSE stream)
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if h.hubManager == nil {
		WriteError(w, NewInternalError())
		return
	}

	if _, err := h.controller.GetSession(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(string(id))
	sse.ServeSSE(w, r, hub)
}
