package api

import (
	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/service"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Assistant() *service.Assistant
	Directory() storage.ProfileRepository
}

type app struct {
	logger    internal.Logger
	assistant *service.Assistant
	directory storage.ProfileRepository
}

func NewApp(logger internal.Logger, assistant *service.Assistant, directory storage.ProfileRepository) App {
	return &app{logger: logger, assistant: assistant, directory: directory}
}

func (a *app) Logger() internal.Logger              { return a.logger }
func (a *app) Assistant() *service.Assistant        { return a.assistant }
func (a *app) Directory() storage.ProfileRepository { return a.directory }
