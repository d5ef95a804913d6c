package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/stretchr/testify/require"
)

// fakeAuth is a scripted Authenticator. When gate is set, Refresh blocks
// until it is closed; logoutGate does the same for Logout.
type fakeAuth struct {
	mu sync.Mutex

	loginResp *models.AuthResponse
	loginErr  error

	gate        chan struct{}
	refreshPair *models.TokenPair
	refreshErr  error

	logoutErr  error
	logoutGate chan struct{}

	refreshCalls     int
	lastRefreshToken string
	logoutCalls      int
	lastLogoutToken  string
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Refresh(_ context.Context, refreshToken string) (*models.TokenPair, error) {
	f.mu.Lock()
	f.refreshCalls++
	f.lastRefreshToken = refreshToken
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return f.refreshPair, f.refreshErr
}

func (f *fakeAuth) Logout(_ context.Context, accessToken string) error {
	f.mu.Lock()
	f.logoutCalls++
	f.lastLogoutToken = accessToken
	gate, err := f.logoutGate, f.logoutErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeAuth) refreshes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshCalls
}

func (f *fakeAuth) logouts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logoutCalls
}

// memStore keeps the record in memory and counts writes.
type memStore struct {
	mu      sync.Mutex
	rec     *Record
	saves   int
	clears  int
	loadErr error
	saveErr error
}

func (s *memStore) Load(context.Context) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.rec == nil {
		return nil, nil
	}
	cp := *s.rec
	return &cp, nil
}

func (s *memStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *rec
	s.rec = &cp
	s.saves++
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	s.clears++
	return nil
}

func (s *memStore) record() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

var errRefreshDenied = errors.New("refresh token expired")

func newLoggedIn(t *testing.T, auth *fakeAuth, access, refresh string) (*Manager, *memStore) {
	t.Helper()
	st := &memStore{}
	m := NewManager(st, auth)
	require.NoError(t, m.SetTokens(context.Background(), access, refresh))
	return m, st
}

func queued(m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func waitRefreshing(t *testing.T, m *Manager) {
	t.Helper()
	require.Eventually(t, func() bool { return m.State() == StateRefreshing }, 2*time.Second, time.Millisecond)
}

func waitQueued(t *testing.T, m *Manager, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return queued(m) == n }, 2*time.Second, time.Millisecond)
}
