// Package watch reports changes to a single file.
//
// FSNotifySource watches the file's parent directory so that editors which
// save by writing a temporary file and renaming it over the original still
// produce a Changed event. Bursts of writes are coalesced by a debounce
// delay. Removing or renaming the file away produces a Removed event, after
// which Run returns.
package watch
