package win

import (
	"github.com/gspiers/buzzbingo/internal/model"
)

// Detector finds completed lines on a board. It is a pure function of the
// marked-state: deterministic, idempotent, and stable-ordered (rows 0-4,
// columns 0-4, then the two diagonals).
type Detector struct{}

// New creates a new Detector
func New() *Detector {
	return &Detector{}
}

// CheckWins returns every line whose five cells are all marked.
// Multiple simultaneous wins are all reported; no wins yields an empty set.
func (d *Detector) CheckWins(board *model.Board) []model.Line {
	var winning []model.Line
	for _, line := range model.AllLines() {
		if d.isComplete(board, line) {
			winning = append(winning, line)
		}
	}
	return winning
}

func (d *Detector) isComplete(board *model.Board, line model.Line) bool {
	for _, pos := range line.Positions() {
		if !board.IsMarked(pos) {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type DetectorInterface interface {
	CheckWins(board *model.Board) []model.Line
}

var _ DetectorInterface = (*Detector)(nil)
