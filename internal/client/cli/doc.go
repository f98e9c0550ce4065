// Package cli provides the interactive tenant back-office console.
//
// It wires configuration, the persisted session, API services, and an
// interactive REPL with one sub-screen per managed resource. Typical flow:
// hydrate the stored session (or prompt for credentials), start a background
// reachability watcher, and dispatch user commands.
//
// Key screens:
//   - clients: tenant client records (list, search, sort, add, edit, delete)
//   - users: managed accounts, including enable/disable
//   - databases: registered databases, connection test and backup
//   - logo: the tenant logo (show, upload, replace, delete)
//   - stats: aggregate dashboard counters
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
