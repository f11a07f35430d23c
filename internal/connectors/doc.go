// Package connectors provides implementations of the Connector interface
// for the supported document sources. Each connector knows how to list
// and fetch raw documents from one source type (local filesystem,
// Google Drive).
package connectors
