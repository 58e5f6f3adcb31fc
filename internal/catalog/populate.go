package catalog

import (
	"context"
	"fmt"

	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/ctxlog"
	"github.com/vk/pqbench/internal/synth"
)

// Build creates a fresh catalog holding the built-in experiments. It is meant
// to be called once by the process entry point.
func Build(ctx context.Context, tmpl synth.Template) (*Catalog, error) {
	c := New()
	if err := c.Populate(ctx, tmpl, Builtin()); err != nil {
		return nil, fmt.Errorf("failed to build built-in catalog: %w", err)
	}
	return c, nil
}

// Populate synthesizes the commands of every declared experiment and registers
// the result. It stops at the first error.
func (c *Catalog) Populate(ctx context.Context, tmpl synth.Template, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	if model == nil {
		return nil
	}

	for _, decl := range model.Experiments {
		e, err := synth.Experiment(tmpl, decl.Name, decl.Definitions...)
		if err != nil {
			return withSource(err, decl.Source)
		}
		if err := c.Register(e); err != nil {
			return withSource(err, decl.Source)
		}
		logger.Debug("Registered experiment.", "name", e.Name(), "definitions", e.Len())
	}

	logger.Debug("Catalog populated.", "experiments", c.Len())
	return nil
}

func withSource(err error, source string) error {
	if source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", source, err)
}
