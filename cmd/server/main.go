package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/api"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/config"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/service"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := storage.NewProfileSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init user directory source: %v", err)
	}
	if pg, ok := src.(*storage.PostgresSource); ok {
		defer pg.Close()
	}
	dir, err := storage.LoadDirectory(ctx, src, logger)
	if err != nil {
		// login keeps working and reports that no users are available
		logger.Errorf("failed to load user directory, starting empty: %v", err)
		dir = storage.NewDirectory(nil)
	}
	logger.Infof("user directory loaded with %d profiles", dir.Len())

	sessions, err := storage.NewSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init session store: %v", err)
	}
	if rs, ok := sessions.(*storage.RedisSessionStore); ok {
		defer rs.Close()
	}

	assistant := service.NewAssistant(dir, sessions, logger,
		service.WithDelay(service.FixedDelay(cfg.ReplyDelay)))
	app := api.NewApp(logger, assistant, dir)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(app, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("server running on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
