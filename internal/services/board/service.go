package board

import (
	"log/slog"

	"github.com/gspiers/buzzbingo/internal/dependencies/random"
	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/services/pool"
)

// Service generates boards and mutates marks. It owns no persistence; the
// session controller saves the board as part of its session.
type Service struct {
	poolService *pool.Service
	random      random.Random
	logger      *slog.Logger
}

// New creates a new board Service
func New(poolService *pool.Service, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		poolService: poolService,
		random:      random,
		logger:      logger.With(slog.String("component", "board")),
	}
}

// Generate builds a fresh board: 24 distinct phrases sampled uniformly
// without replacement from the pool, placed row-major around the center
// free cell. Only the free cell starts marked.
func (s *Service) Generate() (model.Board, error) {
	phrases, err := s.poolService.Phrases()
	if err != nil {
		return model.Board{}, err
	}
	if len(phrases) < model.PhrasesPerBoard {
		return model.Board{}, model.ErrPoolTooSmall
	}

	sample := s.random.SampleStrings(phrases, model.PhrasesPerBoard)

	var board model.Board
	free := model.FreeCellPosition()
	i := 0
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if (model.Position{Row: row, Col: col}) == free {
				board.Cells[row][col] = model.Cell{Phrase: model.FreeCellLabel, Marked: true}
				continue
			}
			board.Cells[row][col] = model.Cell{Phrase: sample[i]}
			i++
		}
	}

	return board, nil
}

// Toggle flips the marked flag at the given position. The free cell and
// out-of-range positions are no-ops; the returned bool reports whether the
// board changed.
func (s *Service) Toggle(board *model.Board, pos model.Position) bool {
	if !board.IsValidPosition(pos) || board.IsFreeCell(pos) {
		return false
	}
	board.Cells[pos.Row][pos.Col].Marked = !board.Cells[pos.Row][pos.Col].Marked
	return true
}

// ResetMarks clears every mark except the free cell, keeping phrases intact
func (s *Service) ResetMarks(board *model.Board) {
	free := model.FreeCellPosition()
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			board.Cells[row][col].Marked = (model.Position{Row: row, Col: col}) == free
		}
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate() (model.Board, error)
	Toggle(board *model.Board, pos model.Position) bool
	ResetMarks(board *model.Board)
}

var _ ServiceInterface = (*Service)(nil)
