package model

// LineKind distinguishes the three families of winnable lines
type LineKind string

const (
	LineRow      LineKind = "row"
	LineColumn   LineKind = "col"
	LineDiagonal LineKind = "diag"
)

// Line identifies one of the 12 winnable lines on a board: rows 0-4,
// columns 0-4, and the two diagonals. Diagonal 0 runs top-left to
// bottom-right, diagonal 1 top-right to bottom-left.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// AllLines returns every winnable line in detection order: rows first,
// then columns, then the two diagonals.
func AllLines() []Line {
	lines := make([]Line, 0, 2*BoardSize+2)
	for i := 0; i < BoardSize; i++ {
		lines = append(lines, Line{Kind: LineRow, Index: i})
	}
	for i := 0; i < BoardSize; i++ {
		lines = append(lines, Line{Kind: LineColumn, Index: i})
	}
	lines = append(lines, Line{Kind: LineDiagonal, Index: 0})
	lines = append(lines, Line{Kind: LineDiagonal, Index: 1})
	return lines
}

// Positions returns the five cell positions the line covers
func (l Line) Positions() []Position {
	positions := make([]Position, BoardSize)
	for i := 0; i < BoardSize; i++ {
		switch l.Kind {
		case LineRow:
			positions[i] = Position{Row: l.Index, Col: i}
		case LineColumn:
			positions[i] = Position{Row: i, Col: l.Index}
		case LineDiagonal:
			if l.Index == 0 {
				positions[i] = Position{Row: i, Col: i}
			} else {
				positions[i] = Position{Row: i, Col: BoardSize - 1 - i}
			}
		}
	}
	return positions
}

// Contains returns true if the line covers the given position
func (l Line) Contains(pos Position) bool {
	for _, p := range l.Positions() {
		if p == pos {
			return true
		}
	}
	return false
}
