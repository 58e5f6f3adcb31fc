package experiment

import (
	"errors"
	"strings"
)

// Experiment is a named group of definitions. The order of the definitions is
// the order in which the variants are run.
type Experiment struct {
	name string
	defs []Definition
}

// New creates an Experiment. It fails when the name is blank or when no
// definitions are given.
func New(name string, defs ...Definition) (*Experiment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("experiment name must not be empty")
	}
	if len(defs) == 0 {
		return nil, &MissingConfigurationError{Experiment: name, Position: -1, Field: "definition"}
	}
	return &Experiment{
		name: name,
		defs: cloneAll(defs),
	}, nil
}

// Name returns the unique name of the experiment.
func (e *Experiment) Name() string {
	return e.name
}

// Len returns the number of definitions.
func (e *Experiment) Len() int {
	return len(e.defs)
}

// Definitions returns a deep copy of the definitions in run order.
func (e *Experiment) Definitions() []Definition {
	return cloneAll(e.defs)
}

// Definition returns the definition at position i.
func (e *Experiment) Definition(i int) (Definition, bool) {
	if i < 0 || i >= len(e.defs) {
		return Definition{}, false
	}
	return e.defs[i].clone(), true
}

func cloneAll(defs []Definition) []Definition {
	out := make([]Definition, len(defs))
	for i, d := range defs {
		out[i] = d.clone()
	}
	return out
}
