// Package session holds the client's shared session state: the
// authenticated Identity, the UI theme, a queue of self-expiring
// notifications and the auth-form state.
//
// A Controller is created once per process and passed to every view. Views
// read snapshots (State) and subscribe to changes; they never mutate the
// state directly. All mutations go through the Controller's methods, which
// are safe for concurrent use.
//
// Authorization-denied answers from any backend call must be routed through
// Controller.Guard, which turns them into a forced session expiry.
package session
