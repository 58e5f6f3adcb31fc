package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pqbench/internal/catalog"
	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	catalog *catalog.Catalog
}

// NewApp is the constructor for the main application. It builds the catalog
// exactly once: the built-in experiments first, then every experiment the
// loader finds under the configured path. Configuration errors are fatal and
// panic; the entrypoint recovers them.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	tmpl := cfg.Template()
	cat := catalog.New()
	if !cfg.NoBuiltin {
		built, err := catalog.Build(ctx, tmpl)
		if err != nil {
			// The built-in declarations are part of the binary, so this is a programmer error.
			panic(fmt.Errorf("invalid built-in experiments: %w", err))
		}
		cat = built
		logger.Debug("Built-in experiments registered.", "count", cat.Len())
	}

	if cfg.ExperimentsPath != "" {
		model, err := loader.Load(ctx, cfg.ExperimentsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load experiments: %w", err))
		}
		if err := cat.Populate(ctx, tmpl, model); err != nil {
			panic(fmt.Errorf("failed to register experiments: %w", err))
		}
		logger.Debug("Declared experiments registered.", "path", cfg.ExperimentsPath, "count", len(model.Experiments))
	}

	logger.Info("Experiment catalog ready.", "experiments", cat.Len(), "server_path", tmpl.ServerPath)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		catalog: cat,
	}
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
