package cli

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that provide defaults for the matching flags.
const (
	EnvExperimentsPath = "PQBENCH_EXPERIMENTS_PATH"
	EnvServerPath      = "PQBENCH_SERVER_PATH"
	EnvFormat          = "PQBENCH_FORMAT"
	EnvLogLevel        = "PQBENCH_LOG_LEVEL"
	EnvUsers           = "PQBENCH_USERS"
)

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// env resolves flag defaults from the environment.
type env struct {
	lookup LookupFunc
}

func newEnv(lookup LookupFunc) env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return env{lookup: lookup}
}

func (e env) stringOr(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e env) intOr(key string, def int) (int, error) {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, v)
	}
	return i, nil
}
