package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawpal-planner/internal/agenda"
	"pawpal-planner/internal/config"
	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/platform/logger"
	"pawpal-planner/internal/router"
	"pawpal-planner/internal/seed"
)

// @title PawPal Planner API
// @version 1.0
// @description Planificador de tareas de cuidado de mascotas: agenda diaria, conflictos y recurrencias.
// @BasePath /
func main() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	}).With(map[string]any{"env": cfg.Env})

	svc := planner.NewService(planner.NewSystem(), log)

	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Error("seed load failed", map[string]any{"file": cfg.SeedFile, "error": err.Error()})
			os.Exit(1)
		}
		sum, err := seed.Apply(svc, f)
		if err != nil {
			log.Error("seed apply failed", map[string]any{"file": cfg.SeedFile, "error": err.Error()})
			os.Exit(1)
		}
		log.Info("seed loaded", map[string]any{"file": cfg.SeedFile, "owners": sum.Owners, "pets": sum.Pets, "tasks": sum.Tasks})
	}

	job := agenda.New(svc, log, cfg.Agenda.Schedule)
	if err := job.Start(cfg.Agenda.OnStart); err != nil {
		log.Error("agenda job failed to start", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer job.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Service: svc, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			return
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
