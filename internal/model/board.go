package model

// BoardSize is the fixed grid dimension. The game is always 5x5 with a
// single free cell in the center.
const BoardSize = 5

// FreeCellLabel is the sentinel phrase shown on the free cell. It is never
// drawn from the phrase pool.
const FreeCellLabel = "FREE"

// PhrasesPerBoard is the number of pool phrases a board consumes (every
// cell except the free cell).
const PhrasesPerBoard = BoardSize*BoardSize - 1

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the position lies within the 5x5 grid
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// FreeCellPosition returns the position of the permanently-marked free cell
func FreeCellPosition() Position {
	return Position{Row: BoardSize / 2, Col: BoardSize / 2}
}

// Cell is a single tile on the board
type Cell struct {
	Phrase string `json:"phrase"`
	Marked bool   `json:"marked"`
}

// Board is the 5x5 grid of phrase tiles owned by a session
type Board struct {
	Cells [BoardSize][BoardSize]Cell `json:"cells"`
}

// Get returns the cell at the given position, or a zero Cell if out of range
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{}
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.InBounds()
}

// IsFreeCell returns true if the position is the permanent free cell
func (b *Board) IsFreeCell(pos Position) bool {
	return pos == FreeCellPosition()
}

// IsMarked returns true if the cell at the given position is marked.
// Out-of-range positions are unmarked.
func (b *Board) IsMarked(pos Position) bool {
	return b.Get(pos).Marked
}

// MarkedCount returns the number of marked cells, free cell included
func (b *Board) MarkedCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col].Marked {
				count++
			}
		}
	}
	return count
}

// Phrases returns the phrase grid in row-major order
func (b *Board) Phrases() [BoardSize][BoardSize]string {
	var out [BoardSize][BoardSize]string
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			out[row][col] = b.Cells[row][col].Phrase
		}
	}
	return out
}

// Marks returns the marked-flag grid in row-major order
func (b *Board) Marks() [BoardSize][BoardSize]bool {
	var out [BoardSize][BoardSize]bool
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			out[row][col] = b.Cells[row][col].Marked
		}
	}
	return out
}
