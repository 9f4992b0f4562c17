// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alchemix/barkeep/internal/application/formula"
	appInventory "github.com/alchemix/barkeep/internal/application/inventory"
	"github.com/alchemix/barkeep/internal/application/mention"
	appRecipe "github.com/alchemix/barkeep/internal/application/recipe"
	"github.com/alchemix/barkeep/internal/domain/shared"
	"github.com/alchemix/barkeep/internal/infrastructure/cache"
	"github.com/alchemix/barkeep/internal/infrastructure/config"
	"github.com/alchemix/barkeep/internal/infrastructure/events"
	"github.com/alchemix/barkeep/internal/infrastructure/http/server"
	gormRepo "github.com/alchemix/barkeep/internal/infrastructure/persistence/gorm"
	"github.com/alchemix/barkeep/internal/infrastructure/persistence/memory"
	"github.com/alchemix/barkeep/internal/infrastructure/persistence/sqlite"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/alchemix/barkeep/pkg/healthcheck"
	"github.com/alchemix/barkeep/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	EventModule,
	FormulaModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the SQLite database
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.Database.LogQueries || cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}

		if cfg.Database.Seed {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == ":memory:"),
		)

		return db, nil
	},
)

// CacheModule provides the cache backend. Redis when enabled, otherwise the
// in-memory cache.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			redisCache, err := cache.NewRedisCache(cfg, log)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to redis: %w", err)
			}
			log.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
			return redisCache, nil
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	fx.Annotate(
		gormRepo.NewRecipeRepository,
		fx.As(new(outbound.RecipeRepository)),
	),
	fx.Annotate(
		gormRepo.NewInventoryRepository,
		fx.As(new(outbound.InventoryRepository)),
	),
)

// EventModule provides the domain event dispatcher
var EventModule = fx.Provide(
	fx.Annotate(
		events.NewDispatcher,
		fx.As(new(shared.EventDispatcher)),
	),
)

// FormulaModule provides the formula compiler and mention linker
var FormulaModule = fx.Provide(
	formula.DefaultRegistry,
	formula.NewCompiler,
	mention.NewLinker,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	appRecipe.NewRecipeService,
	appInventory.NewInventoryService,
)

// HealthModule provides the health checker with its probes
var HealthModule = fx.Provide(
	func(cfg *config.Config, db *gorm.DB) *healthcheck.Checker {
		checker := healthcheck.NewChecker(cfg.App.Version)
		checker.Register("database", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
		return checker
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Barkeep application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Barkeep application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
