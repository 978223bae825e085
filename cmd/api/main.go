package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-api/internal/adapters/storage"
	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/platform/config"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"
)

// @title Pet Adoption API
// @version 1.0
// @description Publicación de mascotas en adopción, listado y solicitudes de adopción.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("load config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	ctx := context.Background()

	stores, err := storage.Open(ctx, cfg.Store, cfg.EnableTracing)
	if err != nil {
		log.Error("open store", map[string]any{"driver": string(cfg.Store.Driver), "err": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		PetRepo:          stores.Pets,
		AdoptionRepo:     stores.Adoptions,
		Intake:           media.NewIntake(cfg.UploadRoot),
		Logger:           log,
		InitialPetStatus: cfg.InitialPetStatus,
		RequestTimeout:   cfg.RequestTimeout,
		CORSOrigins:      cfg.CORSOrigins,
		EnableTracing:    cfg.EnableTracing,
		ServiceName:      cfg.Log.App,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// Los uploads multipart pueden sumar ~26 MiB.
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{
			"addr":   cfg.Addr(),
			"store":  string(cfg.Store.Driver),
			"upload": cfg.UploadRoot,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("server is shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", map[string]any{"err": err.Error()})
	}
	if err := stores.Close(shutdownCtx); err != nil {
		log.Warn("close store", map[string]any{"err": err.Error()})
	}

	log.Info("server stopped", nil)
}
