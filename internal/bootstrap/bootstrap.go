package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "schooladmin/internal/app/controllers"
	appGateway "schooladmin/internal/app/gateway"
	appMigrations "schooladmin/internal/app/migrations"
	appRepos "schooladmin/internal/app/repositories"
	appRoutes "schooladmin/internal/app/routes"
	appServices "schooladmin/internal/app/services"
	"schooladmin/internal/config"
	"schooladmin/internal/db"
	appMiddleware "schooladmin/internal/middleware"
	"schooladmin/internal/pkg/logger"
)

const (
	// Database connect retries at startup, matching the deployment's habit
	// of starting the app before the database is ready.
	maxConnectAttempts = 20
	connectRetryDelay  = 3 * time.Second
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ImportService          *appServices.ImportService
	StudentService         *appServices.StudentService
	ClassService           *appServices.ClassService
	ReportService          *appServices.ReportService
	HealthcheckController  *appControllers.HealthcheckController
	ImportController       *appControllers.ImportController
	StudentController      *appControllers.StudentController
	ClassController        *appControllers.ClassController
	ReportsController      *appControllers.ReportsController
	Repos                  *appRepos.Repositories
	RosterGateway          *appGateway.RosterGateway
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the database connection, retrying while the
// database comes up, and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	var database *db.PostgresDB
	var err error

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		lgr.Info().Int("attempt", attempt).Int("maxAttempts", maxConnectAttempts).Msg("Connecting to database...")
		database, err = db.NewPostgresDB(cfg)
		if err == nil {
			break
		}

		lgr.Error().Err(err).Msg("Database connection failed")
		if attempt < maxConnectAttempts {
			lgr.Info().Dur("retryIn", connectRetryDelay).Msg("Retrying database connection")
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxConnectAttempts, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.RosterGateway = appGateway.NewRosterGateway(cfg.External.BaseURL, cfg.ExternalTimeout(), lgr)

	deps.ImportService = appServices.NewImportService(
		database,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ClassRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.ClassRepository,
		deps.Repos.EnrollmentRepository,
		deps.RosterGateway,
		lgr,
	)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.EnrollmentRepository, lgr)

	deps.HealthcheckController = appControllers.NewHealthcheckController()
	deps.ImportController = appControllers.NewImportController(deps.ImportService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.ReportsController = appControllers.NewReportsController(deps.ReportService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.HealthcheckController,
		deps.ImportController,
		deps.StudentController,
		deps.ClassController,
		deps.ReportsController,
	)

	return router
}
