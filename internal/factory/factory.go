package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hoopgm/capcrash/internal/dependencies/clock"
	"github.com/hoopgm/capcrash/internal/dependencies/random"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/auth"
	"github.com/hoopgm/capcrash/internal/services/cap"
	"github.com/hoopgm/capcrash/internal/services/coach"
	"github.com/hoopgm/capcrash/internal/services/roster"
	"github.com/hoopgm/capcrash/internal/services/rules"
	"github.com/hoopgm/capcrash/internal/services/season"
	"github.com/hoopgm/capcrash/internal/storage"
	"github.com/hoopgm/capcrash/internal/storage/memory"
	redisstorage "github.com/hoopgm/capcrash/internal/storage/redis"
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
	CapService          *cap.Service
	RulesService        *rules.Service
	SeasonService       *season.Service
	AchievementsService *achievements.Service
	CoachService        *coach.Service
	RosterController    *roster.Controller
	AuthService         *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
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

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.TokenDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	capService := cap.New()
	rulesService := rules.New()
	seasonService := season.New(rnd)
	achievementsService := achievements.New()
	coachService := coach.New()
	rosterController := roster.NewController(store, capService, rulesService, seasonService, achievementsService, clk, rnd, logger)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		CapService:          capService,
		RulesService:        rulesService,
		SeasonService:       seasonService,
		AchievementsService: achievementsService,
		CoachService:        coachService,
		RosterController:    rosterController,
		AuthService:         authService,
	}
}
