// Package driving declares the interfaces through which the CLI and
// the web dashboard drive the core services.
package driving
