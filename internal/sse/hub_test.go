package sse

import (
	"testing"
	"time"

	"github.com/gspiers/buzzbingo/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "cell_toggled",
			data:      `{"row":0,"col":1}`,
			expected:  "event: cell_toggled\ndata: {\"row\":0,\"col\":1}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "win_detected",
			data:      "line1\nline2",
			expected:  "event: win_detected\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "marks_reset",
			data:      "",
			expected:  "event: marks_reset\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub("SESSION00001", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	hub.BroadcastEvent("cell_toggled", `{"row":0}`)

	select {
	case msg := <-client.send:
		expected := "event: cell_toggled\ndata: {\"row\":0}\n\n"
		if string(msg) != expected {
			t.Errorf("got %q, want %q", string(msg), expected)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub("SESSION00001", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", hub.ClientCount())
	}
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub := NewHub("SESSION00001", testutil.NopLogger())
	go hub.Run()

	client := NewClient(hub)
	hub.Register(client)

	hub.Close()

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestHubManagerGetOrCreate(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub := manager.GetOrCreateHub("SESSION00001")
	if hub == nil {
		t.Fatal("expected hub")
	}
	defer hub.Close()

	if manager.GetOrCreateHub("SESSION00001") != hub {
		t.Error("expected the same hub for the same session")
	}
	if manager.GetHub("SESSION00002") != nil {
		t.Error("expected no hub for unknown session")
	}
}

func TestHubManagerRemoveHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("SESSION00001")
	manager.RemoveHub("SESSION00001")

	if manager.GetHub("SESSION00001") != nil {
		t.Error("expected hub to be removed")
	}
}

func TestHubManagerCleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("SESSION00001")
	busy := manager.GetOrCreateHub("SESSION00002")
	defer busy.Close()

	client := NewClient(busy)
	busy.Register(client)

	// Give the hub loops time to process registration
	deadline := time.Now().Add(time.Second)
	for busy.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if busy.ClientCount() != 1 {
		t.Fatal("client never registered")
	}

	manager.CleanupEmptyHubs()

	if manager.GetHub("SESSION00001") != nil {
		t.Error("expected empty hub to be cleaned up")
	}
	if manager.GetHub("SESSION00002") == nil {
		t.Error("expected busy hub to survive cleanup")
	}
}
