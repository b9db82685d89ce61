package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schoolfm/internal/app/controllers"
	appMigrations "github.com/yigit/schoolfm/internal/app/migrations"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	appRepos "github.com/yigit/schoolfm/internal/app/repositories"
	appRoutes "github.com/yigit/schoolfm/internal/app/routes"
	appServices "github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/config"
	"github.com/yigit/schoolfm/internal/db"
	appMiddleware "github.com/yigit/schoolfm/internal/middleware"
	"github.com/yigit/schoolfm/internal/pkg/filestorage"
	"github.com/yigit/schoolfm/internal/pkg/logger"
	"github.com/yigit/schoolfm/internal/seed"
)

// DefaultConfigPath is used when no config path is given.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	StaffRoleService    appServices.StaffRoleService
	ClassService        appServices.ClassService
	SectionService      appServices.SectionService
	StaffService        appServices.StaffService
	StudentService      appServices.StudentService
	BusRouteService     appServices.BusRouteService
	BusStopService      appServices.BusStopService
	FeeStructureService appServices.FeeStructureService
	FeeService          appServices.FeeService
	SettingsService     appServices.SettingsService
	HealthService       appServices.HealthService

	StaffRoleController *appControllers.StaffRoleController
	ClassController     *appControllers.ClassController
	StaffController     *appControllers.StaffController
	StudentController   *appControllers.StudentController
	TransportController *appControllers.TransportController
	BillingController   *appControllers.BillingController
	SettingsController  *appControllers.SettingsController
	HealthController    *appControllers.HealthController

	Repos    *appRepos.Repositories
	Settings *filestorage.LocalStorage
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, brings the schema up to
// date and seeds the default staff roles. The schema is rebuilt from scratch
// only when database.reset_on_start is set.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if cfg.Database.ResetOnStart {
		lgr.Warn().Msg("database.reset_on_start is enabled, all data will be dropped")
		err = migrator.Reset(ctx)
	} else {
		lgr.Info().Msg("Running database migrations...")
		err = migrator.Migrate(ctx)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database schema is up to date.")

	if _, err := seed.EnsureStaffRoles(ctx, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.Settings, err = filestorage.NewLocalStorage(cfg.Server.SettingsPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize settings storage")
		return nil, fmt.Errorf("failed to initialize settings storage: %w", err)
	}

	deps.StaffRoleService = appServices.NewStaffRoleService(deps.Repos.StaffRoleRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.SectionService = appServices.NewSectionService(deps.Repos.SectionRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.FeeRepository)
	deps.BusRouteService = appServices.NewBusRouteService(deps.Repos.BusRouteRepository)
	deps.BusStopService = appServices.NewBusStopService(deps.Repos.BusStopRepository)
	deps.FeeStructureService = appServices.NewFeeStructureService(deps.Repos.FeeStructureRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.SettingsService = appServices.NewSettingsService(deps.Settings)
	deps.HealthService = appServices.NewHealthService(dbPool)

	deps.StaffRoleController = appControllers.NewStaffRoleController(deps.StaffRoleService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService, deps.SectionService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.TransportController = appControllers.NewTransportController(deps.BusRouteService, deps.BusStopService)
	deps.BillingController = appControllers.NewBillingController(deps.FeeStructureService, deps.FeeService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.HealthController = appControllers.NewHealthController(deps.HealthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StaffRoleController,
		deps.ClassController,
		deps.StaffController,
		deps.StudentController,
		deps.TransportController,
		deps.BillingController,
		deps.SettingsController,
		deps.HealthController,
	)

	setupStaticUI(router, cfg.Server.StaticPath, lgr)
	return router, nil
}

// setupStaticUI serves the administrative UI for every GET that no API route
// matched. Unknown /api paths get a JSON 404.
func setupStaticUI(router *gin.Engine, staticPath string, lgr zerolog.Logger) {
	if info, err := os.Stat(staticPath); err != nil || !info.IsDir() {
		lgr.Warn().Str("path", staticPath).Msg("Static UI directory not found, only the API is served")
		staticPath = ""
	} else {
		lgr.Info().Str("path", staticPath).Msg("Static file serving configured for the admin UI")
	}

	var fileServer http.Handler
	if staticPath != "" {
		fileServer = http.FileServer(gin.Dir(staticPath, false))
	}

	router.NoRoute(func(c *gin.Context) {
		isAPI := strings.HasPrefix(c.Request.URL.Path, "/api/")
		if fileServer != nil && !isAPI && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "route not found").WithSeverity(dto.ErrorSeverityWarning)))
	})
}
