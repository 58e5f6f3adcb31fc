package catalog

import (
	"errors"
	"iter"

	"github.com/vk/pqbench/internal/experiment"
)

// Catalog is an ordered registry of experiments keyed by name.
type Catalog struct {
	byName map[string]*experiment.Experiment
	order  []*experiment.Experiment
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*experiment.Experiment),
	}
}

// Register appends an experiment. An existing entry with the same name is kept
// and a DuplicateNameError is returned.
func (c *Catalog) Register(e *experiment.Experiment) error {
	if e == nil {
		return errors.New("cannot register a nil experiment")
	}
	if _, exists := c.byName[e.Name()]; exists {
		return &experiment.DuplicateNameError{Name: e.Name()}
	}
	c.byName[e.Name()] = e
	c.order = append(c.order, e)
	return nil
}

// Get returns the experiment registered under name.
func (c *Catalog) Get(name string) (*experiment.Experiment, error) {
	e, ok := c.byName[name]
	if !ok {
		return nil, &experiment.NotFoundError{Name: name}
	}
	return e, nil
}

// List yields experiment names in registration order. The sequence can be
// ranged over any number of times.
func (c *Catalog) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range c.order {
			if !yield(e.Name()) {
				return
			}
		}
	}
}

// All yields the experiments in registration order.
func (c *Catalog) All() iter.Seq[*experiment.Experiment] {
	return func(yield func(*experiment.Experiment) bool) {
		for _, e := range c.order {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of registered experiments.
func (c *Catalog) Len() int {
	return len(c.order)
}
