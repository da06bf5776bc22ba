// Package types defines the Karabiner configuration model used throughout
// karabiner-cli: the Configuration document, its Profiles, and the
// complex-modification Rules, Manipulators, events and Conditions they own.
//
// Only the fields this tool reads or writes are decoded into typed fields.
// Everything else is captured as an opaque Payload and emitted back
// unchanged, so a document edited by this tool keeps whatever the remap
// engine (or a newer version of it) put there.
package types
