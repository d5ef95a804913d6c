// Package session owns the admin console's authentication session.
//
// # Overview
//
// A Manager holds the access/refresh token pair and the cached user profile,
// persists them through a Store, and renews the access token when the API
// answers 401. Transport is an http.RoundTripper that puts the bearer token
// on every outbound request and drives the renewal transparently, so API
// code never sees the intermediate 401.
//
// # Single-flight refresh
//
// The Manager is either StateIdle or StateRefreshing. The first caller that
// needs a new token while idle becomes the leader and calls the refresh
// endpoint; everyone arriving while a refresh is in flight is parked on a
// one-shot channel in a FIFO queue. When the leader's call settles the queue
// is drained in arrival order with the new token or with the error, and the
// state returns to idle. State, queue and tokens are guarded by one mutex.
//
// A refresh failure, or a 401 without a refresh token, forces a logout: the
// remote logout endpoint is called best-effort and the local session is
// cleared in memory and in the Store.
//
// # Exempt endpoints
//
// Responses from login, register, logout and refresh-token never trigger a
// refresh. A replayed request is never replayed again.
package session
