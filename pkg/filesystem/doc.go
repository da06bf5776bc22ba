// Package filesystem provides filesystem implementations for karabiner-cli.
//
// This package contains the FS interface used by the configuration store,
// an implementation backed by the OS, and one backed by afero for tests
// and alternative storage.
package filesystem
