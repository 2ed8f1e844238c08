// Package client contains the client-side building blocks that talk to the
// outside world: the qaboard GraphQL API and the local SQLite database.
//
// # Overview
//
//  1. Client is the API contract used by the services layer.
//  2. GraphQLClient implements it with JSON over HTTP POST, attaching the
//     current session token as an "Authorization: Bearer" header.
//  3. OpenDatabase and RunMigrations bootstrap the local database that
//     keeps the persisted session.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. GraphQL errors come back as
// *APIError, which matches common.ErrorNotFound, common.ErrorForbidden and
// ErrUnauthorized through errors.Is according to their extension code.
// BAD_USER_INPUT errors are returned as *common.ValidationError so callers
// can show the per-field messages.
package client
