package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gspiers/buzzbingo/internal/dependencies/clock"
	"github.com/gspiers/buzzbingo/internal/dependencies/random"
	"github.com/gspiers/buzzbingo/internal/services/board"
	"github.com/gspiers/buzzbingo/internal/services/pool"
	"github.com/gspiers/buzzbingo/internal/services/session"
	"github.com/gspiers/buzzbingo/internal/services/win"
	"github.com/gspiers/buzzbingo/internal/sse"
	"github.com/gspiers/buzzbingo/internal/storage"
	"github.com/gspiers/buzzbingo/internal/storage/memory"
	redisstorage "github.com/gspiers/buzzbingo/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PoolService       *pool.Service
	BoardService      *board.Service
	WinDetector       *win.Detector
	SessionController *session.Controller
	HubManager        *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// The phrase pool still needs loading before sessions can be created.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	poolService := pool.New(store, logger)
	boardService := board.New(poolService, rnd, logger)
	winDetector := win.New()
	sessionController := session.NewController(store, boardService, winDetector, clk, rnd, logger)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		PoolService:       poolService,
		BoardService:      boardService,
		WinDetector:       winDetector,
		SessionController: sessionController,
		HubManager:        hubManager,
	}
}
