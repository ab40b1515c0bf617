package session

import (
	"context"
	"log/slog"

	"github.com/gspiers/buzzbingo/internal/dependencies/clock"
	"github.com/gspiers/buzzbingo/internal/dependencies/random"
	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/services/board"
	"github.com/gspiers/buzzbingo/internal/services/win"
	"github.com/gspiers/buzzbingo/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const sessionIDLength = 12

// Controller manages session lifecycle and the celebration state machine.
// Every mutation re-runs the win detector, so WinningLines always mirrors
// the current marks; Phase latches on the first win and only NewBoard or
// ResetMarks return it to idle.
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	detector     *win.Detector
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	detector *win.Detector,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		detector:     detector,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "session")),
	}
}

// CreateSession starts a new session with a freshly generated board
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, []model.Event, error) {
	b, err := c.boardService.Generate()
	if err != nil {
		return nil, nil, err
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(sessionIDLength, sessionIDAlphabet)),
		Board:     b,
		Phase:     model.PhaseIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	c.logger.Info("session created", slog.String("session_id", string(session.ID)))

	events := []model.Event{c.event(session, model.EventBoardGenerated, model.BoardGeneratedPayload{})}
	return session, events, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// NewBoard regenerates the session's board: fresh random phrases, marks
// reset to free-cell-only, winning lines cleared, phase back to idle.
func (c *Controller) NewBoard(ctx context.Context, id model.SessionID) (*model.Session, []model.Event, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	b, err := c.boardService.Generate()
	if err != nil {
		return nil, nil, err
	}

	session.Board = b
	session.Phase = model.PhaseIdle
	session.WinningLines = nil
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	c.logger.Info("board regenerated", slog.String("session_id", string(id)))

	events := []model.Event{c.event(session, model.EventBoardGenerated, model.BoardGeneratedPayload{Regenerated: true})}
	return session, events, nil
}

// ResetMarks clears all marks except the free cell, keeping the phrase
// layout. Winning lines are cleared and the phase returns to idle.
func (c *Controller) ResetMarks(ctx context.Context, id model.SessionID) (*model.Session, []model.Event, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	c.boardService.ResetMarks(&session.Board)
	session.Phase = model.PhaseIdle
	session.WinningLines = nil
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	events := []model.Event{c.event(session, model.EventMarksReset, nil)}
	return session, events, nil
}

// Toggle flips a cell's mark and advances the state machine. Toggling the
// free cell or an out-of-range position leaves the session untouched.
func (c *Controller) Toggle(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, []model.Event, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !c.boardService.Toggle(&session.Board, pos) {
		// No-op toggle: nothing to persist, nothing to announce
		return session, nil, nil
	}

	events := []model.Event{c.event(session, model.EventCellToggled, model.CellToggledPayload{
		Position: pos,
		Marked:   session.Board.IsMarked(pos),
	})}

	// The highlighted set always reflects current detector output; the
	// phase only ever advances out of idle here.
	session.WinningLines = c.detector.CheckWins(&session.Board)
	if session.Phase == model.PhaseIdle && session.HasWin() {
		session.Phase = model.PhaseCelebrating
		events = append(events, c.event(session, model.EventWinDetected, model.WinDetectedPayload{
			Lines:    session.WinningLines,
			FirstWin: true,
		}))
		c.logger.Info("win detected",
			slog.String("session_id", string(id)),
			slog.Int("lines", len(session.WinningLines)),
		)
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	return session, events, nil
}

// Dismiss acknowledges the celebration. Outside the celebrating phase it
// is a no-op, so clients can call it safely at any time.
func (c *Controller) Dismiss(ctx context.Context, id model.SessionID) (*model.Session, []model.Event, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if session.Phase != model.PhaseCelebrating {
		return session, nil, nil
	}

	session.Phase = model.PhaseAcknowledged
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	events := []model.Event{c.event(session, model.EventCelebrationDismissed, nil)}
	return session, events, nil
}

func (c *Controller) event(session *model.Session, t model.EventType, payload any) model.Event {
	return model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		SessionID: session.ID,
		Payload:   payload,
	}
}
