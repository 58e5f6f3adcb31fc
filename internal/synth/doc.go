// Package synth turns a definition's declared overrides into the command lines
// each run role executes.
//
// Synthesis is a pure function of a Template and an experiment.Overrides
// value. Flags are appended through a cmdline.Builder in a fixed order, which
// is the command-line contract with the server under test.
package synth
