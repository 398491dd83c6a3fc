package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"auction-front/internal/clock"
	"auction-front/internal/config"
	model "auction-front/internal/models"
	"auction-front/internal/seed"
	"auction-front/internal/server"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		utils.Fatal("failed to configure logger", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.GinMode)

	listings, err := loadListings(cfg)
	if err != nil {
		utils.Fatal("failed to load seed listings", map[string]any{"error": err.Error(), "seed_file": cfg.SeedFile})
	}

	app, err := server.NewApp(cfg, clock.Real{}, listings)
	if err != nil {
		utils.Fatal("failed to initialize app", map[string]any{"error": err.Error()})
	}
	defer app.Close()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: app.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()
	app.Health.SetReady(true)

	<-ctx.Done()
	app.Health.SetReady(false)
	utils.Info("shutting down auction server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("server stopped", nil)
}

// loadListings reads SEED_FILE when set and the embedded defaults otherwise
func loadListings(cfg *config.Config) ([]model.Listing, error) {
	if cfg.SeedFile != "" {
		return seed.LoadFile(cfg.SeedFile)
	}
	return seed.Load()
}
