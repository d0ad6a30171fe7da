package bootstrap

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanish-bhagat/Health-Sathi/config"
	"github.com/sanish-bhagat/Health-Sathi/internal/infrastructure/database"
	"github.com/sanish-bhagat/Health-Sathi/internal/repository"
	"github.com/sanish-bhagat/Health-Sathi/internal/usecase"
	"github.com/sanish-bhagat/Health-Sathi/pkg/token"
	"github.com/sanish-bhagat/Health-Sathi/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Auth    usecase.AuthUsecase
	Reports usecase.ReportUsecase
	Session *usecase.SessionUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	app.DB = db

	initializeLayers(app, cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeLayers wires repositories and usecases into the app
func initializeLayers(app *App, cfg *config.Config, db *gorm.DB) {
	tokenService := token.NewService(cfg.Token)
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	reportRepo := repository.NewReportRepository()

	log := logrus.StandardLogger()

	app.Auth = usecase.NewAuthUsecase(db, log, userRepo, tokenService, customValidator)
	app.Reports = usecase.NewReportUsecase(db, log, reportRepo, customValidator)
	app.Session = usecase.NewSessionUsecase(db, log, userRepo, reportRepo, tokenService)
}

// Run blocks until an interrupt signal arrives, then shuts down.
func (app *App) Run() {
	logrus.Infof("Health Sathi store ready at %s", app.Config.Store.Path)
	logrus.Infof("Environment: %s", app.Config.App.Env)

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down...")

	app.Close()

	logrus.Info("Shutdown complete")
}

// Close closes the store connection.
func (app *App) Close() {
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			logrus.Errorf("Failed to close local store: %v", err)
		}
	}
}
