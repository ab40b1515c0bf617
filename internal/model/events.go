package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventBoardGenerated       EventType = "board_generated"
	EventCellToggled          EventType = "cell_toggled"
	EventMarksReset           EventType = "marks_reset"
	EventWinDetected          EventType = "win_detected"
	EventCelebrationDismissed EventType = "celebration_dismissed"
	EventSessionDeleted       EventType = "session_deleted"
)

// Event is the base structure for all session events
type Event struct {
	Type      EventType
	Timestamp time.Time
	SessionID SessionID
	Payload   any // Type-specific data
}

// CellToggledPayload contains data for cell toggled events
type CellToggledPayload struct {
	Position Position `json:"position"`
	Marked   bool     `json:"marked"`
}

// WinDetectedPayload contains data for win detected events
type WinDetectedPayload struct {
	// Lines is the full winning set at detection time
	Lines []Line `json:"lines"`
	// FirstWin is true when this detection moved the session out of Idle
	FirstWin bool `json:"first_win"`
}

// BoardGeneratedPayload contains data for board generated events
type BoardGeneratedPayload struct {
	// Regenerated is false for the board created with the session itself
	Regenerated bool `json:"regenerated"`
}
