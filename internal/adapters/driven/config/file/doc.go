// Package file provides the TOML-backed configuration store. Settings
// live in ~/.wortzahl/config.toml; nested tables are flattened to
// dot-notation keys on load.
package file
