package app

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/vk/pqbench/internal/ctxlog"
	"github.com/vk/pqbench/internal/experiment"
	"github.com/vk/pqbench/internal/export"
)

// Run prints either the experiment names or the resolved definitions of the
// selected experiments.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	format, err := export.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	if a.config.List || (a.config.Experiment == "" && format == export.Text) {
		logger.Debug("Listing experiment names.")
		return export.WriteNames(a.outW, a.catalog.List())
	}

	exps := a.catalog.All()
	if a.config.Experiment != "" {
		e, err := a.catalog.Get(a.config.Experiment)
		if err != nil {
			return err
		}
		exps = single(e)
		logger.Debug("Experiment selected.", "name", e.Name(), "definitions", e.Len())
	}

	if err := export.Write(a.outW, format, exps); err != nil {
		return fmt.Errorf("failed to render experiments: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func single(e *experiment.Experiment) iter.Seq[*experiment.Experiment] {
	return slices.Values([]*experiment.Experiment{e})
}
