package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aksoyb/schedly/docs" // generated swagger docs
	appControllers "github.com/aksoyb/schedly/internal/app/controllers"
	appMigrations "github.com/aksoyb/schedly/internal/app/migrations"
	appRepos "github.com/aksoyb/schedly/internal/app/repositories"
	appRoutes "github.com/aksoyb/schedly/internal/app/routes"
	appServices "github.com/aksoyb/schedly/internal/app/services"
	"github.com/aksoyb/schedly/internal/config"
	"github.com/aksoyb/schedly/internal/db"
	appMiddleware "github.com/aksoyb/schedly/internal/middleware"
	pkgAuth "github.com/aksoyb/schedly/internal/pkg/auth"
	"github.com/aksoyb/schedly/internal/pkg/logger"
	"github.com/aksoyb/schedly/internal/pkg/validation"
	"github.com/aksoyb/schedly/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	Services            *appServices.Services
	SemesterController  *appControllers.SemesterController
	CourseController    *appControllers.CourseController
	DoctorController    *appControllers.DoctorController
	ClassroomController *appControllers.ClassroomController
	TimeSlotController  *appControllers.TimeSlotController
	SectionController   *appControllers.SectionController
	ScheduleController  *appControllers.ScheduleController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	TokenVerifier       *pkgAuth.TokenVerifier
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		// Seed data is a convenience, not a startup requirement.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.TokenVerifier = pkgAuth.NewTokenVerifier(pkgAuth.VerifierConfig{
		SecretKey: cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenVerifier)

	deps.SemesterController = appControllers.NewSemesterController(deps.Services.SemesterService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.DoctorController = appControllers.NewDoctorController(deps.Services.DoctorService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.Services.ClassroomService)
	deps.TimeSlotController = appControllers.NewTimeSlotController(deps.Services.TimeSlotService)
	deps.SectionController = appControllers.NewSectionController(deps.Services.SectionService)
	deps.ScheduleController = appControllers.NewScheduleController(
		deps.Services.ScheduleService,
		deps.Services.ConflictService,
		deps.Services.GeneratorService,
		deps.Services.ValidationService,
	)

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

	validation.RegisterCustomRules()

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.SemesterController,
		deps.CourseController,
		deps.DoctorController,
		deps.ClassroomController,
		deps.TimeSlotController,
		deps.SectionController,
		deps.ScheduleController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
