package integrationtests

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/vk/pqbench/internal/app"
	"github.com/vk/pqbench/internal/hcl"
	"github.com/vk/pqbench/internal/testutil"
)

// harnessResult holds the outcomes of an application run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// runApp writes files to a temporary directory, points the experiments path
// at it when files are given, and runs the application with cfg. A panic
// during startup is reported through Err.
func runApp(t *testing.T, files map[string]string, cfg app.Config) (result *harnessResult) {
	t.Helper()

	if len(files) > 0 {
		cfg.ExperimentsPath = testutil.WriteFiles(t, files)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	result = &harnessResult{}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("application startup panicked: %v", r)
		}
		result.Output = out.String()
		result.LogOutput = logs.String()
	}()

	a := app.NewApp(&out, logs, &cfg, hcl.NewLoader())
	result.App = a
	result.Err = a.Run(context.Background())
	return result
}
