// Package cli provides the interactive foldervault command-line client.
//
// It wires configuration, the local vault database, the sync client and the
// application services, and runs a REPL over them. A background watcher
// probes the sync service and flips the prompt between online and offline.
//
// Key features:
//   - init / unlock / lock a local profile
//   - list, add, rename and delete folders (synchronized with the server)
//   - add and list items, which follow their folder on delete
//   - sync the folder list from the server, clear it locally
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
