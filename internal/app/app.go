package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/ctxlog"
	"github.com/vk/shapegridgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW        io.Writer
	logger      *slog.Logger
	registry    *registry.Registry
	model       *config.Model
	eval        config.Evaluator
	defaultMode config.Mode
}

// New is the constructor for the main application. It loads the suite
// through the given loader, populates the dimension registry, and
// validates the whole model before anything runs.
func New(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, eval, err := loader.Load(ctx, appConfig.SuitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load suite: %w", err)
	}
	logger.Debug("Suite loaded and translated into unified model.",
		"dims", len(model.Dims), "sessions", len(model.Sessions), "broadcasts", len(model.Broadcasts))

	reg := registry.New()
	reg.PopulateFromModel(model)
	logger.Debug("Dimension registry populated.", "dims", reg.Names())

	if err := reg.Validate(ctx, model); err != nil {
		return nil, err
	}
	logger.Debug("Suite validation passed.")

	// NewConfig already validated the mode string.
	defaultMode, _ := config.ParseMode(appConfig.Mode)

	return &App{
		outW:        outW,
		logger:      logger,
		registry:    reg,
		model:       model,
		eval:        eval,
		defaultMode: defaultMode,
	}, nil
}

// Registry returns the application's dimension registry. This is
// primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded suite model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
