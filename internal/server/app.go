// Package server initializes and runs the Daybook backend. It wires config,
// database, repositories, services, and the HTTP endpoint, and handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jkalnins/daybook/internal/logging"
	"github.com/jkalnins/daybook/internal/server/config"
	"github.com/jkalnins/daybook/internal/server/httpapi"
	"github.com/jkalnins/daybook/internal/server/repositories/repomanager"
	"github.com/jkalnins/daybook/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	entryService := services.NewEntryService(db, rm)
	attachmentService := services.NewAttachmentService(db, rm, cfg)

	handlers := httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(userService, logger),
		Entries:     httpapi.NewEntryHandler(entryService, logger),
		Attachments: httpapi.NewAttachmentHandler(attachmentService, logger),
		Tasks:       httpapi.NewTaskHandler(services.NewTaskService(db, rm), logger),
		Goals:       httpapi.NewGoalHandler(services.NewGoalService(db, rm), logger),
		Habits:      httpapi.NewHabitHandler(services.NewHabitService(db, rm), logger),
		Moods:       httpapi.NewMoodHandler(services.NewMoodService(db, rm), logger),
		Schedules:   httpapi.NewScheduleHandler(services.NewScheduleService(db, rm), logger),
		Gratitude:   httpapi.NewGratitudeHandler(services.NewGratitudeService(db, rm), logger),
		Capsules:    httpapi.NewCapsuleHandler(services.NewCapsuleService(db, rm), logger),
	}

	router := httpapi.NewRouter(handlers, []byte(cfg.SecretKey), cfg.CORSAllowedOrigins)
	server := httpapi.NewServer(cfg.EndpointAddr, router, logger)

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "app stopped")
}
