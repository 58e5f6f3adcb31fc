// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle that builds the experiment
// catalog and renders it, decoupled from any specific entrypoint like a CLI.
package app
