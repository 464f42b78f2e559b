package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/HoseaMuriira/iruma-portal/internal/app/controllers"
	appMigrations "github.com/HoseaMuriira/iruma-portal/internal/app/migrations"
	appRepos "github.com/HoseaMuriira/iruma-portal/internal/app/repositories"
	appRoutes "github.com/HoseaMuriira/iruma-portal/internal/app/routes"
	appServices "github.com/HoseaMuriira/iruma-portal/internal/app/services"
	"github.com/HoseaMuriira/iruma-portal/internal/config"
	"github.com/HoseaMuriira/iruma-portal/internal/db"
	appMiddleware "github.com/HoseaMuriira/iruma-portal/internal/middleware"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/logger"
	"github.com/HoseaMuriira/iruma-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	PortalService    appServices.PortalService
	AuthController   *appControllers.AuthController
	PortalController *appControllers.PortalController
	IntakeController *appControllers.IntakeController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the standing data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultDepartments(context.Background(), database, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to seed departments, proceeding anyway...")
	}
	if cfg.Server.SeedDemoData {
		if err := seed.CreateDemoAccounts(context.Background(), database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo accounts, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SessionRepository,
		cfg.SessionTTL(),
		lgr,
	)
	deps.PortalService = appServices.NewPortalService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.ResultRepository,
		deps.Repos.IntakeRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Repos.SessionRepository, cfg.Session.CookieName)

	redirects := appRoutes.Redirects()
	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		cfg.Session.CookieName,
		int(cfg.SessionTTL().Seconds()),
		redirects,
	)
	deps.PortalController = appControllers.NewPortalController(deps.PortalService)
	deps.IntakeController = appControllers.NewIntakeController(deps.PortalService, redirects)

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

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PortalController,
		deps.IntakeController,
		deps.AuthMiddleware,
	)

	return router
}
