// Package domain contains the core types of the wortzahl analysis
// pipeline: documents, analysis reports and the errors shared across
// services and adapters. It has no dependencies on other internal
// packages.
package domain
