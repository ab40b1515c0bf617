package response

import (
	"github.com/gspiers/buzzbingo/internal/model"
)

// Line identifies a winning line
type Line struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// LineFromModel converts a model.Line
func LineFromModel(l model.Line) Line {
	return Line{
		Kind:  string(l.Kind),
		Index: l.Index,
	}
}

// SessionState is the full session snapshot presentation layers render from:
// the phrase grid, the marked-flag grid, the winning lines, and the phase.
type SessionState struct {
	ID           string         `json:"id"`
	Phase        string         `json:"phase"`
	Phrases      [][]string     `json:"phrases"`
	Marks        [][]bool       `json:"marks"`
	WinningLines []Line         `json:"winning_lines"`
	FreeCell     model.Position `json:"free_cell"`
}

// SessionStateFromModel converts a model.Session to a response SessionState
func SessionStateFromModel(s *model.Session) SessionState {
	phrases := make([][]string, model.BoardSize)
	marks := make([][]bool, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		phrases[row] = make([]string, model.BoardSize)
		marks[row] = make([]bool, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			cell := s.Board.Cells[row][col]
			phrases[row][col] = cell.Phrase
			marks[row][col] = cell.Marked
		}
	}

	lines := make([]Line, len(s.WinningLines))
	for i, l := range s.WinningLines {
		lines[i] = LineFromModel(l)
	}

	return SessionState{
		ID:           string(s.ID),
		Phase:        string(s.Phase),
		Phrases:      phrases,
		Marks:        marks,
		WinningLines: lines,
		FreeCell:     model.FreeCellPosition(),
	}
}
