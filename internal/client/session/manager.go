package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/logging"
)

// Authenticator is the part of the Auth API the Manager depends on.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
}

type refreshResult struct {
	accessToken string
	err         error
}

// Manager is the single owner of the session. It is safe for concurrent use.
type Manager struct {
	mu           sync.Mutex
	accessToken  string
	refreshToken string
	user         *models.UserProfile
	state        State
	queue        []chan refreshResult
	onLogout     []func()

	// persistMu orders writes to the store; the snapshot is taken under it
	// so the last write always carries the latest state.
	persistMu sync.Mutex

	store   Store
	auth    Authenticator
	log     logging.Logger
	metrics *Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithMetrics enables the session counters.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// NewManager returns a logged-out Manager. Call Restore to load a saved session.
func NewManager(store Store, auth Authenticator, opts ...Option) *Manager {
	m := &Manager{store: store, auth: auth, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the persisted session. A record holding only one of the two
// tokens is treated as logged out and wiped.
func (m *Manager) Restore(ctx context.Context) error {
	rec, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	if rec == nil {
		return nil
	}

	if !rec.Complete() {
		m.log.Warn(ctx, "discarding incomplete session record")
		m.mu.Lock()
		m.clearLocked()
		m.mu.Unlock()
		return m.store.Clear(ctx)
	}

	m.mu.Lock()
	m.accessToken = rec.AccessToken
	m.refreshToken = rec.RefreshToken
	m.user = rec.User
	m.mu.Unlock()

	m.log.Info(ctx, "session restored")
	return nil
}

// Login authenticates against the API and starts a new session.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return nil, ErrEmptyTokenPair
	}

	m.mu.Lock()
	m.accessToken = resp.AccessToken
	m.refreshToken = resp.RefreshToken
	m.user = resp.User
	m.mu.Unlock()

	return resp.User, m.persist(ctx)
}

// SetTokens replaces the token pair and persists the session.
func (m *Manager) SetTokens(ctx context.Context, access, refresh string) error {
	m.mu.Lock()
	m.accessToken = access
	m.refreshToken = refresh
	m.mu.Unlock()
	return m.persist(ctx)
}

// SetUser replaces the cached profile and persists the session.
func (m *Manager) SetUser(ctx context.Context, user *models.UserProfile) error {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return m.persist(ctx)
}

// Tokens returns the current access and refresh tokens.
func (m *Manager) Tokens() (access, refresh string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken, m.refreshToken
}

// AccessToken returns the current access token, empty when logged out.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken
}

// User returns the cached profile, nil when logged out.
func (m *Manager) User() *models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// State reports whether a refresh is in flight.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsAuthenticated reports whether both tokens are held.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken != "" && m.refreshToken != ""
}

// OnLogout registers fn to run after every forced logout.
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	m.onLogout = append(m.onLogout, fn)
	m.mu.Unlock()
}

// Refresh returns a fresh access token. stale is the token the failed
// request was sent with; when the session already holds a different one
// it is returned without calling the API.
func (m *Manager) Refresh(ctx context.Context, stale string) (string, error) {
	token, _, err := m.refresh(ctx, stale)
	return token, err
}

// refresh reports whether the caller led the refresh call; followers that
// were queued get leader == false.
func (m *Manager) refresh(ctx context.Context, stale string) (token string, leader bool, err error) {
	m.mu.Lock()

	if m.state == StateRefreshing {
		ch := make(chan refreshResult, 1)
		m.queue = append(m.queue, ch)
		m.mu.Unlock()

		m.metrics.parked()
		m.log.Debug(ctx, "request queued behind token refresh")

		select {
		case res := <-ch:
			return res.accessToken, false, res.err
		case <-ctx.Done():
			// ch is buffered, the drain will not block on us.
			return "", false, ctx.Err()
		}
	}

	if m.accessToken != "" && m.accessToken != stale {
		token = m.accessToken
		m.mu.Unlock()
		return token, false, nil
	}

	refreshToken := m.refreshToken
	if refreshToken == "" {
		if m.accessToken == "" {
			// already logged out
			m.mu.Unlock()
			return "", true, ErrNoRefreshToken
		}
		access := m.clearLocked()
		m.mu.Unlock()
		m.log.Warn(ctx, "unauthorized without refresh token, logging out")
		m.endSession(ctx, access, true)
		return "", true, ErrNoRefreshToken
	}

	m.state = StateRefreshing
	m.mu.Unlock()

	// The refresh settles for every queued caller, so the leader giving up
	// must not abort it.
	ctx = context.WithoutCancel(ctx)

	m.log.Info(ctx, "refreshing access token")
	pair, err := m.auth.Refresh(ctx, refreshToken)
	if err == nil && (pair == nil || pair.AccessToken == "") {
		err = ErrEmptyTokenPair
	}

	// The outcome, the tokens and the state change together: nobody may see
	// Idle while the rejected refresh token is still held.
	var access string
	m.mu.Lock()
	queue := m.queue
	m.queue = nil
	m.state = StateIdle
	if err == nil {
		m.accessToken = pair.AccessToken
		if pair.RefreshToken != "" {
			m.refreshToken = pair.RefreshToken
		}
	} else {
		access = m.clearLocked()
	}
	m.mu.Unlock()

	if err != nil {
		m.metrics.refreshed(false)
		m.log.Warn(ctx, "token refresh failed", "queued", len(queue), "error", err)
		for _, ch := range queue {
			ch <- refreshResult{err: err}
		}
		m.endSession(ctx, access, true)
		return "", true, err
	}

	m.metrics.refreshed(true)
	if perr := m.persist(ctx); perr != nil {
		m.log.Error(ctx, "failed to persist refreshed session", "error", perr)
	}

	m.log.Info(ctx, "access token refreshed", "queued", len(queue))
	for _, ch := range queue {
		ch <- refreshResult{accessToken: pair.AccessToken}
	}
	return pair.AccessToken, true, nil
}

// ForceLogout ends the session because it can no longer be used. The
// remote logout call is best-effort; the local state and the store are
// cleared whatever it returns. The OnLogout hooks run afterwards.
func (m *Manager) ForceLogout(ctx context.Context) {
	m.mu.Lock()
	access := m.clearLocked()
	m.mu.Unlock()
	m.endSession(ctx, access, true)
}

// Logout ends the session at the user's request. It clears the same state as
// ForceLogout but is not counted as forced and does not run the hooks.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	access := m.clearLocked()
	m.mu.Unlock()
	m.endSession(ctx, access, false)
}

// clearLocked drops the tokens and the profile and returns the access token
// they held. m.mu must be held.
func (m *Manager) clearLocked() string {
	access := m.accessToken
	m.accessToken = ""
	m.refreshToken = ""
	m.user = nil
	return access
}

// endSession finishes a logout whose in-memory state is already cleared.
func (m *Manager) endSession(ctx context.Context, access string, forced bool) {
	if err := m.auth.Logout(ctx, access); err != nil {
		m.log.Warn(ctx, "remote logout failed", "error", err)
	}

	if err := m.persist(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored session", "error", err)
	}

	if !forced {
		m.log.Info(ctx, "logged out")
		return
	}

	m.metrics.loggedOut()
	m.log.Info(ctx, "session cleared")

	m.mu.Lock()
	hooks := append([]func(){}, m.onLogout...)
	m.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

func (m *Manager) persist(ctx context.Context) error {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.mu.Lock()
	rec := &Record{User: m.user, AccessToken: m.accessToken, RefreshToken: m.refreshToken}
	m.mu.Unlock()

	if rec.AccessToken == "" && rec.RefreshToken == "" {
		return m.store.Clear(ctx)
	}
	return m.store.Save(ctx, rec)
}
