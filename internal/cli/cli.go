package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/pqbench/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flag defaults are read from the PQBENCH_* environment variables.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseWithEnv(args, output, os.LookupEnv)
}

// ParseWithEnv is Parse with an explicit environment lookup.
func ParseWithEnv(args []string, output io.Writer, lookup LookupFunc) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := newEnv(lookup)
	usersDefault, err := defaults.intOr(EnvUsers, 0)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	flagSet := flag.NewFlagSet("pqbench", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pqbench - Benchmark experiment catalog for pqserver.

Prints the command lines each run role executes for the selected experiment.

Usage:
  pqbench [options] [EXPERIMENT]

Arguments:
  EXPERIMENT
    Name of the experiment to show. Without it, all experiment names are
    listed (text format) or all experiments are rendered (other formats).

Options:
`)
		flagSet.PrintDefaults()
	}

	experimentFlag := flagSet.String("experiment", "", "Name of the experiment to show.")
	eFlag := flagSet.String("e", "", "Name of the experiment to show (shorthand).")
	listFlag := flagSet.Bool("list", false, "Print experiment names only.")
	formatFlag := flagSet.String("format", defaults.stringOr(EnvFormat, "text"), "Output format. Options: 'text', 'json', 'yaml' or 'hcl'.")
	pathFlag := flagSet.String("experiments-path", defaults.stringOr(EnvExperimentsPath, ""), "Path to an .hcl file or directory declaring additional experiments.")
	noBuiltinFlag := flagSet.Bool("no-builtin", false, "Do not register the built-in experiments.")
	serverFlag := flagSet.String("server-path", defaults.stringOr(EnvServerPath, ""), "Path of the server binary used in every command.")
	usersFlag := flagSet.Int("users", usersDefault, "Number of simulated users. 0 keeps the baseline.")
	durationFlag := flagSet.Int("duration", 0, "Client run duration. 0 keeps the baseline.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.stringOr(EnvLogLevel, "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one experiment name may be given"}
	}
	var names []string
	for _, n := range []string{*experimentFlag, *eFlag, flagSet.Arg(0)} {
		if n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("at most one experiment name may be given, got %q", names)}
	}
	name := ""
	if len(names) == 1 {
		name = names[0]
	}
	slog.Debug("Experiment selected.", "name", name)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Experiment:      name,
		List:            *listFlag,
		Format:          strings.ToLower(*formatFlag),
		ExperimentsPath: *pathFlag,
		NoBuiltin:       *noBuiltinFlag,
		ServerPath:      *serverFlag,
		Users:           *usersFlag,
		Duration:        *durationFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
