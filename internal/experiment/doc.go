// Package experiment defines the records held by the experiment catalog.
//
// An Experiment is a named, ordered group of Definitions. Each Definition
// pairs the declared Overrides for one run variant with the Commands that were
// synthesized from them. Both records are built once and never mutated after
// they are handed to the catalog.
package experiment
