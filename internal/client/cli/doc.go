// Package cli provides the interactive Mentorly admin console.
//
// It wires configuration, local storage, the session manager, API clients and
// an interactive REPL. Typical flow: restore the saved session, start a
// background connectivity watcher, and execute operator commands.
//
// Key features:
//   - Register / Login / Logout, profile and password changes
//   - Users, courses, blogs and subscribers: list, show, delete, toggles
//   - Subscriber CSV export and a statistics overview
//   - Session status with access-token expiry
//
// When the session ends on its own (the refresh token was rejected) the
// console drops back to the logged-out command set.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
