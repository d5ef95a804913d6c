// Package common contains shared constants and sentinel errors used across
// the Mentorly admin client.
package common

// Outbound header names.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"
	BearerPrefix            = "Bearer "
)

// Auth API routes, relative to the API base URL.
const (
	LoginPath        = "/auth/login"
	RegisterPath     = "/auth/register"
	LogoutPath       = "/auth/logout"
	RefreshTokenPath = "/auth/refresh-token"
)

// SessionStorageKey names the persisted session record.
const SessionStorageKey = "auth-storage"
