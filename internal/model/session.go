package model

import "time"

// SessionID uniquely identifies a play session
type SessionID string

// Phase represents where the session sits in the celebration state machine
type Phase string

const (
	// PhaseIdle means no win has been detected on the current board yet
	PhaseIdle Phase = "idle"
	// PhaseCelebrating means the first win was just detected and the
	// celebration has not been dismissed
	PhaseCelebrating Phase = "celebrating"
	// PhaseAcknowledged means the player dismissed the celebration but
	// winning lines remain highlighted
	PhaseAcknowledged Phase = "acknowledged"
)

// Session is a single player's game: one board plus the celebration state.
// WinningLines always reflects the detector's output for the current marks;
// Phase is the only latched state and never regresses on toggles.
type Session struct {
	ID           SessionID
	Board        Board
	Phase        Phase
	WinningLines []Line

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWin returns true if at least one line is currently complete
func (s *Session) HasWin() bool {
	return len(s.WinningLines) > 0
}

// IsLineWinning returns true if the given line is in the current winning set
func (s *Session) IsLineWinning(line Line) bool {
	for _, l := range s.WinningLines {
		if l == line {
			return true
		}
	}
	return false
}

// IsPositionWinning returns true if the position lies on any winning line
func (s *Session) IsPositionWinning(pos Position) bool {
	for _, l := range s.WinningLines {
		if l.Contains(pos) {
			return true
		}
	}
	return false
}
