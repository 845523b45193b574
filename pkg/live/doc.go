// Package live pushes toast snapshots to browser clients over WebSocket.
//
// A Hub subscribes to a toast.Manager and broadcasts a rendered snapshot
// message after every transition. Clients send small JSON commands back
// (notify, update, close, closeAll, exited) which the hub translates into
// manager operations. The "exited" command is how a browser reports that a
// toast's exit animation finished, resolving the removal capability via
// the bridge.
package live
