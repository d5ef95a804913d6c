// Package api is the HTTP client of the Mentorly REST API.
//
// # Overview
//
// Two clients share one request/response codec:
//  1. AuthClient talks to the auth endpoints (login, register, refresh-token,
//     logout). It must run on a plain *http.Client: its calls are the ones the
//     session layer makes while recovering from a 401.
//  2. Client covers users, courses, blogs and subscribers. It is meant to run
//     on an *http.Client whose Transport is a session.Transport, which adds
//     the bearer token and renews it.
//
// # Envelope
//
// Every JSON response has the shape
//
//	{"success": true, "message": "...", "data": ..., "pagination": {...}}
//
// The payload is decoded from data; list endpoints also fill a Pagination.
//
// # Error Handling
//
// Non-2xx answers become *APIError values that unwrap to ErrUnauthorized,
// ErrForbidden, ErrNotFound or ErrUnavailable, so callers can match them with
// errors.Is and read the server message with errors.As. Network failures are
// reported as ErrUnavailable.
package api
