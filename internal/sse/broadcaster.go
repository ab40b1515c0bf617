package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/gspiers/buzzbingo/internal/model"
)

// Broadcaster turns session events into SSE messages for watching clients.
// Events are JSON-encoded so headless embedders can consume them directly.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// eventData is the wire shape of a broadcast event
type eventData struct {
	SessionID string `json:"session_id"`
	Payload   any    `json:"payload,omitempty"`
}

// BroadcastEvents sends each event to the session's hub, if one exists.
// Sessions nobody is watching have no hub and cost nothing.
func (b *Broadcaster) BroadcastEvents(events []model.Event) {
	for _, event := range events {
		hub := b.hubManager.GetHub(string(event.SessionID))
		if hub == nil {
			continue
		}

		data, err := json.Marshal(eventData{
			SessionID: string(event.SessionID),
			Payload:   event.Payload,
		})
		if err != nil {
			b.logger.Error("sse failed to encode event",
				slog.String("session", string(event.SessionID)),
				slog.String("type", string(event.Type)),
				slog.Any("error", err))
			continue
		}

		hub.BroadcastEvent(string(event.Type), string(data))
	}
}

// BroadcastSessionDeleted tears down the session's hub after notifying clients
func (b *Broadcaster) BroadcastSessionDeleted(sessionID model.SessionID) {
	hub := b.hubManager.GetHub(string(sessionID))
	if hub == nil {
		return
	}
	hub.BroadcastEvent(string(model.EventSessionDeleted), `{"session_id":"`+string(sessionID)+`"}`)
	b.hubManager.RemoveHub(string(sessionID))
}
