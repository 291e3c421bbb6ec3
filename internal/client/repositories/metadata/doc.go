// Package metadata stores small client-side values (session token, UI
// theme) in the local SQLite database as a key/value table.
package metadata
