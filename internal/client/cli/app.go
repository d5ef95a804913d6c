package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/api"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/config"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/services"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/session"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/storage"
	"github.com/dmitrijs2005/mentorly-admin/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// catalogAPI is the part of api.Client behind the content commands.
type catalogAPI interface {
	ListUsers(ctx context.Context, f models.UserFilters) (*models.Page[models.User], error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListCourses(ctx context.Context, f models.CourseFilters) (*models.Page[models.Course], error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, in models.CourseInput) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	SetCourseStatus(ctx context.Context, id string, active bool) error
	SetCourseFeatured(ctx context.Context, id string, featured bool) error
	CourseStats(ctx context.Context) (*models.CourseStats, error)
	CourseCategories(ctx context.Context) ([]string, error)
	DiscountedCourses(ctx context.Context) ([]models.Course, error)

	ListBlogs(ctx context.Context, f models.BlogFilters) (*models.Page[models.Blog], error)
	GetBlog(ctx context.Context, id string) (*models.Blog, error)
	CreateBlog(ctx context.Context, in models.BlogInput) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id string, in models.BlogInput) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	BlogStats(ctx context.Context) (*models.BlogStats, error)

	Subscribe(ctx context.Context, email, source string) error
	ListSubscribers(ctx context.Context, f models.SubscriberFilters) (*models.Page[models.Subscriber], error)
	Unsubscribe(ctx context.Context, email string) error
	ExportSubscribers(ctx context.Context) ([]byte, error)
	SubscriberStats(ctx context.Context) (*models.SubscriberStats, error)
}

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	session     *session.Manager
	authService services.AuthService
	catalog     catalogAPI
	metrics     *http.Server
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	store := session.NewSQLiteStore(metadata.NewSQLiteRepository(db))
	authClient := api.NewAuthClient(c.APIBaseURL, &http.Client{Timeout: c.RequestTimeout})

	m := session.NewManager(store, authClient,
		session.WithLogger(logger.With("component", "session")),
		session.WithMetrics(session.NewMetrics(reg)),
	)

	if err := m.Restore(ctx); err != nil {
		logger.Warn(ctx, "saved session unreadable, starting logged out", "error", err)
		if err := store.Clear(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	apiClient := api.NewClient(c.APIBaseURL, &http.Client{
		Timeout:   c.RequestTimeout,
		Transport: session.NewTransport(m, nil),
	})

	a := &App{
		config:      c,
		log:         logger,
		db:          db,
		session:     m,
		authService: services.NewAuthService(m, authClient, apiClient, logger.With("component", "auth")),
		catalog:     apiClient,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		mode:        ModeOffline,
	}

	m.OnLogout(func() {
		fmt.Fprintln(a.out, "Session ended. Please log in again.")
	})

	if c.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		a.metrics = &http.Server{Addr: c.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	return a, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Run starts the background workers and blocks in the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	if a.metrics != nil {
		go func() {
			a.log.Info(ctx, "serving metrics", "addr", a.metrics.Addr)
			if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error(ctx, "metrics server failed", "error", err)
			}
		}()
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to the Mentorly admin console (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops the metrics endpoint and closes the database.
func (a *App) Close() {
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.metrics.Shutdown(ctx)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := string(a.getMode())
	if u := a.session.User(); u != nil && a.isLoggedIn() {
		s = u.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// StartOnlineStatusWatcher pings the API every interval and flips the mode
// shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
