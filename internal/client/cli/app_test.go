package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/config"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_SetMode_LogsOnlyChanges(t *testing.T) {
	app, _, _, _ := newTestApp(t, "")
	var buf bytes.Buffer
	app.log = logging.NewTextLogger(&buf, "info")

	app.setMode(ModeOnline)
	app.setMode(ModeOnline)
	app.setMode(ModeOffline)

	assert.Equal(t, ModeOffline, app.getMode())
	assert.Equal(t, 2, strings.Count(buf.String(), "connectivity changed"))
}

func TestApp_GetStatus(t *testing.T) {
	app, auth, _, _ := newTestApp(t, "")
	assert.Equal(t, "(offline)", app.getStatus())

	require.NoError(t, app.session.SetUser(context.Background(), &models.UserProfile{Email: "ada@example.com"}))
	auth.loggedIn = true
	app.setMode(ModeOnline)

	assert.Equal(t, "(ada@example.com online)", app.getStatus())
}

func TestApp_CheckOnline(t *testing.T) {
	app, auth, _, _ := newTestApp(t, "")

	app.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, app.getMode())

	auth.pingErr = errors.New("dial tcp: connection refused")
	app.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, app.getMode())
}

func TestApp_Watcher_StopsOnCancel(t *testing.T) {
	app, _, _, _ := newTestApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.getMode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.APIBaseURL = baseURL
	c.DatabasePath = filepath.Join(t.TempDir(), "mentorly.db")
	c.RequestTimeout = 2 * time.Second
	c.LogLevel = "error"
	return c
}

func TestNewApp_RestoresSessionAcrossRuns(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	cfg := testConfig(t, srv.URL+"/api/v1")
	ctx := context.Background()

	first, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, first.isLoggedIn())
	require.NoError(t, first.session.SetTokens(ctx, "a1", "r1"))
	first.Close()

	second, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	assert.True(t, second.isLoggedIn())
	access, refresh := second.session.Tokens()
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
	assert.Nil(t, second.metrics)
}

func TestNewApp_ForcedLogoutNotifiesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	ctx := context.Background()

	app, err := NewApp(ctx, testConfig(t, srv.URL+"/api/v1"))
	require.NoError(t, err)
	defer app.Close()

	var out bytes.Buffer
	app.out = &out
	require.NoError(t, app.session.SetTokens(ctx, "expired", "revoked"))

	_, err = app.catalog.ListUsers(ctx, models.UserFilters{Page: 1})
	require.Error(t, err)

	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Session ended. Please log in again.")
}

func TestNewApp_MetricsEndpointConfigured(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/api/v1")
	cfg.MetricsAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.metrics)
	assert.Equal(t, "127.0.0.1:0", app.metrics.Addr)
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/api/v1")
	cfg.DatabasePath = filepath.Join(t.TempDir(), "missing", "dir", "mentorly.db")

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}
