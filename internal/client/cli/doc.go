// Package cli provides the interactive qaboard terminal client.
//
// It wires configuration, the local session database, the GraphQL API
// client and an interactive REPL. On start the persisted session (if any
// and not expired) is restored, so a user stays logged in across runs.
//
// Commands:
//   - register / login / logout / whoami
//   - list, show <id>
//   - ask [body], delete <id>
//   - respond <id> [body], unrespond <id> <responseId>
//   - fav <id> (toggles)
//
// Commands that write need a session; run while logged out they ask the
// user to log in instead of calling the server.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
