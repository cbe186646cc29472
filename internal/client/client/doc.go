// Package client contains the transport side of the Software Slayer client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     registration, login, learning categories and items, skills, and Ping.
//  2. A REST implementation (see HTTPClient) that encodes JSON bodies, sends
//     the raw bearer token in the Authorization header, tags every request
//     with an X-Request-ID, and turns non-2xx responses into *APIError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers match failures with errors.Is against ErrUnavailable (transport
// failure or 502/503/504), ErrUnauthorized (401/403) and ErrBadResponse
// (undecodable success body). errors.As with *APIError exposes the status
// code and the user-facing message.
//
// Every method accepts a context.Context and honors its cancellation on top
// of the client-wide request timeout.
package client
