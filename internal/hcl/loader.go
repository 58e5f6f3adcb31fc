package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/ctxlog"
	"github.com/vk/pqbench/internal/fsutil"
)

// Extension is the file extension the loader picks up from directories.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL experiment loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and returns the declared
// experiments in file order. A path that does not exist is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to find experiment files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Experiments {
			decl, err := translateExperiment(block, file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Experiments = append(model.Experiments, decl)
		}
		logger.Debug("Loaded experiments from HCL file.", "file", file, "experiments", len(root.Experiments))
	}

	logger.Debug("HCL loading complete.", "experiments", len(model.Experiments))
	return model, nil
}
