package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/players/internal/services/roster"
	"github.com/mcoot/players/internal/storage"
	"github.com/mcoot/players/internal/storage/memory"
	redisstorage "github.com/mcoot/players/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Roster  *roster.Service

	logger *slog.Logger
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

// New creates a new application with all dependencies wired
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

	return newWithDependencies(store, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, logger *slog.Logger) *App {
	return &App{
		Storage: store,
		Roster:  roster.New(store, logger),
		logger:  logger,
	}
}

// Seed loads the starting eleven if the store is empty
func (a *App) Seed(ctx context.Context) error {
	seeded, err := roster.SeedIfEmpty(ctx, a.Storage, roster.StartingEleven())
	if err != nil {
		return err
	}
	if seeded {
		a.logger.Info("seeded player store", slog.Int("players", len(roster.StartingEleven())))
	} else {
		a.logger.Info("player store already populated, skipping seed")
	}
	return nil
}

// Close releases storage resources
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
