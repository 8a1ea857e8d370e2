package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"task-manager-api/internal/api"
	"task-manager-api/internal/config"
	"task-manager-api/internal/infrastructure/client"
	"task-manager-api/internal/infrastructure/requestlog"
	"task-manager-api/internal/repository"
	"task-manager-api/internal/usecase"
	"task-manager-api/migrations"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	logger := log.New()
	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warnf("unknown log level %q, using info", cfg.LogLevel)
	} else {
		logger.SetLevel(level)
	}

	// Open the task store, creating the database file on first start
	db, err := client.NewSQLiteClient(cfg.DBPath)
	if err != nil {
		logger.Fatalf("failed to open storage: %v", err)
	}
	defer db.Close()

	// Make sure the tasks table exists before serving traffic
	if err := migrations.Up(db.GetDB()); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}
	logger.Info("migrations applied")

	requestLog, err := requestlog.New(cfg.RequestLogPath)
	if err != nil {
		logger.Fatalf("failed to open request log: %v", err)
	}
	defer requestLog.Close()

	taskRepo := repository.NewTaskRepository(db.GetDB())
	taskService := usecase.NewTaskService(taskRepo)

	router := api.NewRouter(taskService, requestLog, db, logger)

	server := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("task manager API listening on %s", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server stopped unexpectedly: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
