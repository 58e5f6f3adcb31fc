// Package config defines the format-agnostic model of experiments declared
// outside the binary, along with the Loader interface that produces it.
//
// The `config.Model` is what the catalog consumes: it carries only declared
// overrides, never synthesized commands. Concrete loaders, such as the HCL
// one, live in separate packages.
package config
