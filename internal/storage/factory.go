package storage

import (
	"context"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/config"
)

func NewProfileSource(ctx context.Context, cfg *config.Config, logger internal.Logger) (ProfileSource, error) {
	if cfg.DirectoryBackend == "postgres" {
		return NewPostgresSource(ctx, cfg.PostgresDSN, logger)
	}
	return NewFileSource(cfg.DirectoryFile, logger), nil
}

func NewSessionStore(ctx context.Context, cfg *config.Config, logger internal.Logger) (SessionStore, error) {
	if cfg.SessionBackend == "redis" {
		return NewRedisSessionStore(ctx, cfg.RedisAddr, cfg.SessionTTL, logger)
	}
	return NewMemorySessionStore(cfg.SessionTTL), nil
}
