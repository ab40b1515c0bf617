package pool

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gspiers/buzzbingo/internal/model"
	"github.com/gspiers/buzzbingo/internal/storage"
)

// MinPhrases is the smallest pool that can fill a board
const MinPhrases = model.PhrasesPerBoard

// Service holds the session's phrase pool. The pool is immutable once
// loaded; a short pool is a fatal configuration error, so every load path
// validates before swapping the pool in.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	phrases []string
	loaded  bool
}

// New creates a new pool Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "pool")),
	}
}

// LoadFromStorage loads the phrase pool from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	phrases, err := s.storage.GetPoolPhrases(ctx)
	if err != nil {
		return err
	}
	return s.loadPhrases(phrases)
}

// LoadFromFile loads the phrase pool from a file (one phrase per line,
// blank lines and "#" comments ignored) and persists it to storage.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var phrases []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.loadPhrases(phrases); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SavePoolPhrases(ctx, phrases); err != nil {
		return err
	}

	s.logger.Info("phrase pool loaded",
		slog.String("path", path),
		slog.Int("phrases", len(phrases)),
	)
	return nil
}

// LoadPhrases directly loads a slice of phrases (useful for testing)
func (s *Service) LoadPhrases(phrases []string) error {
	return s.loadPhrases(phrases)
}

func (s *Service) loadPhrases(phrases []string) error {
	deduped := dedupe(phrases)
	if len(deduped) < MinPhrases {
		return model.ErrPoolTooSmall
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phrases = deduped
	s.loaded = true
	return nil
}

// dedupe removes duplicate phrases, preserving first-seen order
func dedupe(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Phrases returns a snapshot of the loaded pool
func (s *Service) Phrases() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrPoolNotLoaded
	}
	out := make([]string, len(s.phrases))
	copy(out, s.phrases)
	return out, nil
}

// Count returns the number of phrases in the pool
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phrases)
}

// IsLoaded returns whether a pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadPhrases(phrases []string) error
	Phrases() ([]string, error)
	Count() int
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)
