package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gspiers/buzzbingo/internal/dependencies/mocks"
	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/services/pool"
	"github.com/gspiers/buzzbingo/internal/storage/memory"
	"github.com/gspiers/buzzbingo/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	poolService *pool.Service
	random      *mocks.MockRandom
	service     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.poolService = pool.New(memory.New(), testutil.NopLogger())
	s.random = mocks.NewMockRandom()
	s.service = New(s.poolService, s.random, testutil.NopLogger())
}

func (s *ServiceSuite) loadPool(n int) []string {
	phrases := make([]string, n)
	for i := range phrases {
		phrases[i] = fmt.Sprintf("phrase-%02d", i)
	}
	s.Require().NoError(s.poolService.LoadPhrases(phrases))
	return phrases
}

// Generate tests

func (s *ServiceSuite) TestGenerateFillsBoardRowMajor() {
	phrases := s.loadPool(30)

	// Mock random with no queued values draws the first 24 phrases in order
	board, err := s.service.Generate()
	s.Require().NoError(err)

	i := 0
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if pos == model.FreeCellPosition() {
				continue
			}
			s.Equal(phrases[i], board.Cells[row][col].Phrase)
			i++
		}
	}
	s.Equal(model.PhrasesPerBoard, i)
}

func (s *ServiceSuite) TestGeneratePhrasesAreDistinct() {
	s.loadPool(40)

	board, err := s.service.Generate()
	s.Require().NoError(err)

	seen := make(map[string]bool)
	for _, row := range board.Phrases() {
		for _, p := range row {
			s.False(seen[p], "duplicate phrase %q", p)
			seen[p] = true
		}
	}
	s.Equal(model.PhrasesPerBoard+1, len(seen))
}

func (s *ServiceSuite) TestGenerateFreeCell() {
	s.loadPool(30)

	board, err := s.service.Generate()
	s.Require().NoError(err)

	free := model.FreeCellPosition()
	s.Equal(model.FreeCellLabel, board.Cells[free.Row][free.Col].Phrase)
	s.True(board.IsMarked(free))
	s.Equal(1, board.MarkedCount())
}

func (s *ServiceSuite) TestGenerateUsesRandomDraws() {
	phrases := s.loadPool(26)

	// First draw swaps index 1 into slot 0; rest fall through in order
	s.random.QueueIntn(1)

	board, err := s.service.Generate()
	s.Require().NoError(err)
	s.Equal(phrases[1], board.Cells[0][0].Phrase)
	s.Equal(phrases[0], board.Cells[0][1].Phrase)
}

func (s *ServiceSuite) TestGenerateFailsWhenPoolNotLoaded() {
	_, err := s.service.Generate()
	s.ErrorIs(err, model.ErrPoolNotLoaded)
}

func (s *ServiceSuite) TestGenerateWithExactMinimumPool() {
	phrases := s.loadPool(model.PhrasesPerBoard)

	board, err := s.service.Generate()
	s.Require().NoError(err)

	got := make(map[string]bool)
	for _, row := range board.Phrases() {
		for _, p := range row {
			got[p] = true
		}
	}
	for _, p := range phrases {
		s.True(got[p], "missing phrase %q", p)
	}
}

// Toggle tests

func (s *ServiceSuite) TestToggleMarksAndUnmarks() {
	s.loadPool(30)
	board, err := s.service.Generate()
	s.Require().NoError(err)

	pos := model.Position{Row: 0, Col: 0}

	s.True(s.service.Toggle(&board, pos))
	s.True(board.IsMarked(pos))

	s.True(s.service.Toggle(&board, pos))
	s.False(board.IsMarked(pos))
}

func (s *ServiceSuite) TestToggleFreeCellIsNoOp() {
	s.loadPool(30)
	board, err := s.service.Generate()
	s.Require().NoError(err)

	free := model.FreeCellPosition()
	s.False(s.service.Toggle(&board, free))
	s.True(board.IsMarked(free))
}

func (s *ServiceSuite) TestToggleOutOfRangeIsNoOp() {
	s.loadPool(30)
	board, err := s.service.Generate()
	s.Require().NoError(err)

	for _, pos := range []model.Position{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: model.BoardSize, Col: 0},
		{Row: 0, Col: model.BoardSize},
	} {
		s.False(s.service.Toggle(&board, pos))
	}
	s.Equal(1, board.MarkedCount())
}

// ResetMarks tests

func (s *ServiceSuite) TestResetMarksClearsEverythingButFreeCell() {
	s.loadPool(30)
	board, err := s.service.Generate()
	s.Require().NoError(err)

	s.service.Toggle(&board, model.Position{Row: 0, Col: 0})
	s.service.Toggle(&board, model.Position{Row: 4, Col: 4})
	s.service.Toggle(&board, model.Position{Row: 1, Col: 3})
	s.Equal(4, board.MarkedCount())

	phrases := board.Phrases()
	s.service.ResetMarks(&board)

	s.Equal(1, board.MarkedCount())
	s.True(board.IsMarked(model.FreeCellPosition()))
	s.Equal(phrases, board.Phrases())
}
