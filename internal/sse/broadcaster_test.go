package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/testutil"
)

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestBroadcastEventsReachesWatchers(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("SESSION00001")
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	broadcaster.BroadcastEvents([]model.Event{{
		Type:      model.EventCellToggled,
		SessionID: "SESSION00001",
		Payload: model.CellToggledPayload{
			Position: model.Position{Row: 0, Col: 1},
			Marked:   true,
		},
	}})

	msg := receive(t, client)
	if !strings.HasPrefix(msg, "event: cell_toggled\n") {
		t.Errorf("unexpected event name in %q", msg)
	}
	if !strings.Contains(msg, `"session_id":"SESSION00001"`) {
		t.Errorf("missing session id in %q", msg)
	}
	if !strings.Contains(msg, `"row":0`) || !strings.Contains(msg, `"col":1`) {
		t.Errorf("missing position in %q", msg)
	}
}

func TestBroadcastEventsSkipsUnwatchedSessions(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	// No hub exists for this session; must not panic or create one
	broadcaster.BroadcastEvents([]model.Event{{
		Type:      model.EventMarksReset,
		SessionID: "SESSION00001",
	}})

	if manager.GetHub("SESSION00001") != nil {
		t.Error("broadcast should not create hubs")
	}
}

func TestBroadcastSessionDeletedRemovesHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("SESSION00001")
	client := NewClient(hub)
	hub.Register(client)

	broadcaster.BroadcastSessionDeleted("SESSION00001")

	if manager.GetHub("SESSION00001") != nil {
		t.Error("expected hub to be removed after session deletion")
	}

	// Teardown closes every client channel; delivery of the final event is
	// best-effort, so only the close is guaranteed.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-client.send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for client channel to close")
		}
	}
}
