// Package store loads, edits and saves a karabiner.json document.
//
// A Session owns one in-memory Configuration for the lifetime of a
// command: Load reads and validates the file, ActiveProfile and Rules
// read from it, AppendRule mutates it, and Save writes it back.
//
// Saving is asymmetric. The existing file is first copied to
// paths.BackupFile(path); if that copy fails the failure is logged and saving
// continues. Writing the document itself is the only fatal step, and a
// failed write leaves the Configuration exactly as it was so the caller can
// retry. The backup is never restored automatically.
package store
