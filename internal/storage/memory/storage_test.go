package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gspiers/buzzbingo/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:        id,
		Phase:     model.PhaseIdle,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("SESSION00001")
	session.Board.Cells[0][0] = model.Cell{Phrase: "synergy", Marked: true}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal("synergy", retrieved.Board.Cells[0][0].Phrase)
	s.True(retrieved.Board.Cells[0][0].Marked)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("SESSION00001"))

	err := s.storage.DeleteSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "SESSION00001")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionSucceeds() {
	err := s.storage.DeleteSession(s.ctx, "MISSING")
	s.NoError(err)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, s.newSession("SESSION00001"))

	exists, err = s.storage.SessionExists(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	session := s.newSession("SESSION00001")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Phase = model.PhaseCelebrating
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.Equal(model.PhaseCelebrating, retrieved.Phase)
}

// Phrase pool tests

func (s *StorageSuite) TestSaveAndGetPoolPhrases() {
	phrases := []string{"synergy", "leverage", "deep dive"}

	err := s.storage.SavePoolPhrases(s.ctx, phrases)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPoolPhrases(s.ctx)
	s.Require().NoError(err)
	s.Equal(phrases, retrieved)
}

func (s *StorageSuite) TestGetPoolPhrasesEmpty() {
	phrases, err := s.storage.GetPoolPhrases(s.ctx)
	s.Require().NoError(err)
	s.Empty(phrases)
}

func (s *StorageSuite) TestPoolPhrasesCopied() {
	phrases := []string{"synergy", "leverage"}
	_ = s.storage.SavePoolPhrases(s.ctx, phrases)
	phrases[0] = "mutated"

	retrieved, err := s.storage.GetPoolPhrases(s.ctx)
	s.Require().NoError(err)
	s.Equal("synergy", retrieved[0])
}
