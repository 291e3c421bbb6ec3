// Package client contains the client-side building blocks for talking to
// the SkillSphere backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface), one
//     method per backend endpoint. Authorized methods take the bearer
//     token explicitly; the client keeps no session state of its own.
//  2. A concrete REST/JSON implementation (see HTTPClient) that applies a
//     per-request timeout, sets the Authorization header, encodes
//     multipart bodies for posts and uploads, and maps HTTP failures to
//     the error taxonomy below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     CLI: an SQLite database with embedded goose migrations.
//
// # Error Handling
//
//   - ErrUnavailable: the backend could not be reached or timed out.
//   - ErrUnauthorized: the backend answered 401. The concrete error is an
//     *APIError, so the server message is still available.
//   - ErrNotAllowed: the backend answered 403, e.g. editing another
//     user's post. The session stays valid.
//   - *APIError: any other non-2xx answer, carrying the status code and
//     the server-provided message.
//
// MessageOf turns any of these into a user-facing string with a fallback.
package client
