// Package jsonfile persists the full address-book state in one JSON
// file.
//
// The store keeps a single authoritative in-memory snapshot guarded by
// one RWMutex. Every mutation re-serializes the whole state and
// replaces the backing file atomically (write to a temp file, fsync,
// rename), so external readers only ever observe a complete snapshot.
//
// An optional fsnotify watcher reloads the in-memory state when the
// backing file is replaced by an external editor.
package jsonfile
