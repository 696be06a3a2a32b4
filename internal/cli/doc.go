// Package cli provides the interactive PopX command-line client.
//
// It wires configuration, the document store, the account repository, and
// the session manager under an interactive REPL. Typical flow: restore any
// persisted session, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout
//   - Show the current profile
//   - Partial profile updates ("field=value" lines)
//   - Profile image replacement
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
