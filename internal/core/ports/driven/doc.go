// Package driven declares the interfaces the core depends on:
// document extraction, remote file connectors, report persistence and
// configuration. Adapters implement these.
package driven
