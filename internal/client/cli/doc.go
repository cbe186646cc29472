// Package cli provides the interactive Software Slayer command-line client.
//
// It wires configuration, local storage, the session store, API services and
// an interactive REPL. Typical flow: restore the persisted session, start a
// background connectivity watcher, show the home view when signed in, and
// execute user commands.
//
// Key features:
//   - Register / Login / Logout (with confirmation)
//   - Learning items grouped by category: list, refresh, add, delete
//   - Skills: list, add, rename, delete
//
// Notifications are printed as "Title: message"; destructive actions ask for
// a [y/N] confirmation. The REPL is started via App.Run, which blocks until
// the user exits. See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
