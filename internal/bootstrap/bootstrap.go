package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ahatanar/StudentSpace/docs" // Import generated swagger docs
	appControllers "github.com/ahatanar/StudentSpace/internal/app/controllers"
	appMigrations "github.com/ahatanar/StudentSpace/internal/app/migrations"
	appRepos "github.com/ahatanar/StudentSpace/internal/app/repositories"
	appRoutes "github.com/ahatanar/StudentSpace/internal/app/routes"
	appServices "github.com/ahatanar/StudentSpace/internal/app/services"
	"github.com/ahatanar/StudentSpace/internal/config"
	"github.com/ahatanar/StudentSpace/internal/db"
	appMiddleware "github.com/ahatanar/StudentSpace/internal/middleware"
	"github.com/ahatanar/StudentSpace/internal/pkg/cache"
	"github.com/ahatanar/StudentSpace/internal/pkg/helpers"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
	"github.com/ahatanar/StudentSpace/internal/pkg/sectiondata"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SectionSource     appServices.SectionSource
	HeatmapService    appServices.HeatmapService
	HeatmapController *appControllers.HeatmapController
	RateLimiter       *appMiddleware.RateLimiter
	Cache             *cache.Cache
	DBPool            *pgxpool.Pool
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
// Only called when the postgres dataset source is configured.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// SetupSectionSource builds the configured dataset backend: the file store
// reading <data_dir>/<term>.json, or the Postgres repository over the
// section_datasets table.
func SetupSectionSource(cfg *config.Config, lgr zerolog.Logger) (appServices.SectionSource, *pgxpool.Pool, error) {
	switch cfg.Sections.Source {
	case config.SectionSourceFile:
		store, err := sectiondata.NewFileStore(cfg.Sections.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize file dataset store: %w", err)
		}
		lgr.Info().Str("dataDir", cfg.Sections.DataDir).Msg("Using file dataset source")
		return store, nil, nil

	case config.SectionSourcePostgres:
		dbPool, err := SetupDatabase(cfg, lgr)
		if err != nil {
			return nil, nil, err
		}
		lgr.Info().Msg("Using postgres dataset source")
		return appRepos.NewSectionDatasetRepository(dbPool), dbPool, nil

	default:
		return nil, nil, fmt.Errorf("unknown sections source %q", cfg.Sections.Source)
	}
}

// BuildDependencies initializes the dataset source, cache, services, and
// controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	source, dbPool, err := SetupSectionSource(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.SectionSource = source
	deps.DBPool = dbPool

	deps.Cache, err = cache.New(cfg)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	deps.HeatmapService = appServices.NewHeatmapService(
		deps.SectionSource,
		deps.Cache,
		appServices.HeatmapDefaults{
			Term:          cfg.Sections.DefaultTerm,
			Interval:      cfg.Heatmap.DefaultInterval,
			Campus:        cfg.Heatmap.DefaultCampus,
			IncludeHybrid: cfg.Heatmap.IncludeHybrid,
		},
		lgr,
	)

	deps.HeatmapController = appControllers.NewHeatmapController(deps.HeatmapService)

	if cfg.RateLimit.Enabled {
		blockDuration := helpers.ParseDuration(cfg.RateLimit.BlockDuration, time.Minute)
		deps.RateLimiter = appMiddleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			blockDuration,
		)
		lgr.Info().
			Float64("rps", cfg.RateLimit.RequestsPerSecond).
			Int("burst", cfg.RateLimit.Burst).
			Msg("Rate limiting enabled")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	// The heatmap frontend is served from a separate origin
	corsConfig := cors.DefaultConfig()
	origins := cfg.AllowedOriginList()
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.HeatmapController, deps.RateLimiter)

	return router
}
