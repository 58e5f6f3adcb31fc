package synth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/pqbench/internal/cmdline"
	"github.com/vk/pqbench/internal/experiment"
)

const textSuffix = "-text"

// workloadMode is what def_part selects: the workload flag and the encoding.
type workloadMode struct {
	workload string
	binary   bool
}

func parsePart(part string) workloadMode {
	part = strings.TrimSpace(part)
	if wl, ok := strings.CutSuffix(part, textSuffix); ok {
		return workloadMode{workload: wl}
	}
	return workloadMode{workload: part, binary: true}
}

// Resolve synthesizes the commands for a single definition. Errors carry the
// offending field; Definitions adds the experiment name and position.
func Resolve(tmpl Template, o experiment.Overrides) (experiment.Commands, error) {
	mode := parsePart(o.Part)
	if mode.workload == "" {
		return experiment.Commands{}, &experiment.MissingConfigurationError{Field: "def_part"}
	}
	if err := validate(o); err != nil {
		return experiment.Commands{}, err
	}

	server := firstNonEmpty(o.ServerPath, tmpl.ServerPath)
	if server == "" {
		return experiment.Commands{}, &experiment.MissingConfigurationError{Field: "server_path"}
	}
	backend := firstNonEmpty(o.BackendPath, server)
	cache := firstNonEmpty(o.CachePath, server)

	users := firstNonZero(o.Users, tmpl.Users)
	duration := firstNonZero(o.Duration, tmpl.Duration)

	populatePool, clientPool := o.PopulatePool, o.ClientPool
	if o.DB.WriteAround {
		populatePool = withDefaultPool(populatePool)
		clientPool = withDefaultPool(clientPool)
	}

	var cmds experiment.Commands

	cmds.Backend = withEviction(cmdline.New(backend), o.BackendEviction).String()
	cmds.Cache = withEviction(cmdline.New(cache), o.CacheEviction).String()

	if !o.SkipInit {
		cmds.Init = serverBase(server, mode, tmpl, o).
			Flag("initialize").
			Flag("no-populate").
			Flag("no-execute").
			String()
	}

	cmds.Populate = serverBase(server, mode, tmpl, o).
		FlagIf(!o.SkipInit, "no-initialize").
		Flag("no-execute").
		Int("popduration", tmpl.PopDuration).
		IntIfSet("nusers", users).
		IntIfSet("dbpool-max", populatePool.Max).
		IntIfSet("dbpool-depth", populatePool.Depth).
		String()

	cmds.Client = serverBase(server, mode, tmpl, o).
		FlagIf(!o.SkipInit, "no-initialize").
		Flag("no-populate").
		IntIfSet("nusers", users).
		IntIfSet("duration", duration).
		IntPtr("psubscribe", o.ClientMix.Subscribe).
		IntPtr("plogin", o.ClientMix.Login).
		IntPtr("plogout", o.ClientMix.Logout).
		IntIfSet("dbpool-max", clientPool.Max).
		IntIfSet("dbpool-depth", clientPool.Depth).
		String()

	return cmds, nil
}

// Definitions resolves every override set of the named experiment, in order.
func Definitions(tmpl Template, name string, overrides ...experiment.Overrides) ([]experiment.Definition, error) {
	defs := make([]experiment.Definition, 0, len(overrides))
	for i, o := range overrides {
		cmds, err := Resolve(tmpl, o)
		if err != nil {
			return nil, locate(err, name, i)
		}
		defs = append(defs, experiment.Definition{Overrides: o, Commands: cmds})
	}
	return defs, nil
}

// Experiment resolves the overrides and wraps the result in an Experiment.
func Experiment(tmpl Template, name string, overrides ...experiment.Overrides) (*experiment.Experiment, error) {
	defs, err := Definitions(tmpl, name, overrides...)
	if err != nil {
		return nil, err
	}
	return experiment.New(name, defs...)
}

// serverBase starts a command line for the init, populate and client roles.
func serverBase(server string, mode workloadMode, tmpl Template, o experiment.Overrides) *cmdline.Builder {
	return cmdline.New(server).
		Flag(mode.workload).
		FlagIf(tmpl.Verbose, "verbose").
		FlagIf(o.DB.Shim(), "dbshim").
		FlagIf(!mode.binary, "no-binary")
}

func withEviction(b *cmdline.Builder, ev *experiment.Eviction) *cmdline.Builder {
	if ev == nil {
		return b
	}
	return b.Flag("evict-periodic").Int("mem-lo", ev.Lo).Int("mem-hi", ev.Hi)
}

func withDefaultPool(p experiment.Pool) experiment.Pool {
	if p.Max == 0 {
		p.Max = DefaultPoolMax
	}
	if p.Depth == 0 {
		p.Depth = DefaultPoolDepth
	}
	return p
}

func validate(o experiment.Overrides) error {
	if o.Users < 0 {
		return &experiment.InvalidValueError{Field: "users", Reason: "must not be negative"}
	}
	if o.Duration < 0 {
		return &experiment.InvalidValueError{Field: "duration", Reason: "must not be negative"}
	}
	if o.PopulatePool.Max < 0 || o.PopulatePool.Depth < 0 {
		return &experiment.InvalidValueError{Field: "populate_pool", Reason: "must not be negative"}
	}
	if o.ClientPool.Max < 0 || o.ClientPool.Depth < 0 {
		return &experiment.InvalidValueError{Field: "client_pool", Reason: "must not be negative"}
	}
	if err := validateEviction("backend eviction", o.BackendEviction); err != nil {
		return err
	}
	if err := validateEviction("cache eviction", o.CacheEviction); err != nil {
		return err
	}
	return validateDB(o)
}

// validateDB rejects database settings on a definition that runs in memory.
func validateDB(o experiment.Overrides) error {
	if o.DB.Enabled() {
		return nil
	}
	db := o.DB
	if db.WriteAround || db.Compare || db.Flags != "" || db.SQLScript != "" ||
		!o.PopulatePool.IsZero() || !o.ClientPool.IsZero() {
		return &experiment.MissingConfigurationError{Field: "def_db_type"}
	}
	return nil
}

func validateEviction(field string, ev *experiment.Eviction) error {
	if ev == nil {
		return nil
	}
	switch {
	case ev.Lo < 0 || ev.Hi > 100:
		return &experiment.InvalidValueError{Field: field, Reason: fmt.Sprintf("thresholds %d..%d outside 0..100", ev.Lo, ev.Hi)}
	case ev.Lo >= ev.Hi:
		return &experiment.InvalidValueError{Field: field, Reason: fmt.Sprintf("mem-lo %d must be below mem-hi %d", ev.Lo, ev.Hi)}
	}
	return nil
}

// locate stamps the experiment name and definition position on field errors.
func locate(err error, name string, pos int) error {
	var missing *experiment.MissingConfigurationError
	if errors.As(err, &missing) {
		missing.Experiment, missing.Position = name, pos
		return missing
	}
	var invalid *experiment.InvalidValueError
	if errors.As(err, &invalid) {
		invalid.Experiment, invalid.Position = name, pos
		return invalid
	}
	return fmt.Errorf("experiment '%s', definition %d: %w", name, pos, err)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
