package storage

import (
	"context"

	"github.com/gspiers/buzzbingo/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)

	// Phrase pool operations
	GetPoolPhrases(ctx context.Context) ([]string, error)
	SavePoolPhrases(ctx context.Context, phrases []string) error
}
