package session

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mentorly-admin/internal/common"
)

var (
	// ErrNoRefreshToken is returned when a refresh is needed but the session
	// holds no refresh token. The session has been cleared.
	ErrNoRefreshToken = fmt.Errorf("no refresh token: %w", common.ErrorUnauthorized)

	// ErrSessionExpired is returned to requests that were waiting on a
	// refresh that failed.
	ErrSessionExpired = fmt.Errorf("session expired: %w", common.ErrorUnauthorized)

	// ErrEmptyTokenPair means the refresh endpoint answered without an
	// access token.
	ErrEmptyTokenPair = errors.New("refresh returned empty access token")

	ErrNoExpiry = errors.New("token has no exp claim")

	ErrNotAuthenticated = errors.New("not logged in")
)
