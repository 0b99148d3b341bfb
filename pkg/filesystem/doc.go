// Package filesystem provides filesystem implementations for sandfix.
//
// This package defines the FS interface that sandboxes operate through,
// along with the standard OS implementation and an afero-backed
// implementation for in-memory testing.
package filesystem
