package config

import "github.com/vk/pqbench/internal/experiment"

// Model is the unified representation of all declared experiments, in
// declaration order.
type Model struct {
	Experiments []*Experiment
}

// Experiment is one declared experiment before command synthesis.
type Experiment struct {
	Name        string
	Source      string // file the declaration came from, empty for built-ins
	Definitions []experiment.Overrides
}

// Merge appends the experiments of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Experiments = append(m.Experiments, other.Experiments...)
}
