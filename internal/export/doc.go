// Package export renders resolved experiments for the consumers of the
// catalog: a human-readable listing, JSON and YAML documents for benchmark
// runners, and HCL that can be loaded back as experiment declarations.
package export
