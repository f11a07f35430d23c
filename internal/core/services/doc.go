// Package services implements the core use cases: extracting document
// batches and running the analytics engine over them, plus read access
// to the stored report history.
package services
