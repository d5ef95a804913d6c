package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/session"
	"github.com/dmitrijs2005/mentorly-admin/internal/logging"
)

// ---- auth service ----

type fakeAuthService struct {
	loggedIn bool

	regName, regEmail string
	regPass           []byte
	regErr            error

	loginEmail string
	loginPass  []byte
	loginUser  *models.UserProfile
	loginErr   error

	logoutCalls int
	logoutErr   error

	whoami    *models.UserProfile
	whoamiErr error

	oldPass, newPass []byte
	passErr          error

	profileName, profileEmail string

	pingErr error
}

func (f *fakeAuthService) Login(_ context.Context, email string, password []byte) (*models.UserProfile, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	return f.loginUser, nil
}

func (f *fakeAuthService) Register(_ context.Context, fullName, email string, password []byte) error {
	f.regName, f.regEmail, f.regPass = fullName, email, append([]byte(nil), password...)
	return f.regErr
}

func (f *fakeAuthService) Logout(context.Context) error {
	f.logoutCalls++
	f.loggedIn = false
	return f.logoutErr
}

func (f *fakeAuthService) Whoami(context.Context) (*models.UserProfile, error) {
	return f.whoami, f.whoamiErr
}

func (f *fakeAuthService) ChangePassword(_ context.Context, oldPassword, newPassword []byte) error {
	f.oldPass, f.newPass = append([]byte(nil), oldPassword...), append([]byte(nil), newPassword...)
	return f.passErr
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, fullName, email string) (*models.UserProfile, error) {
	f.profileName, f.profileEmail = fullName, email
	return &models.UserProfile{FullName: fullName, Email: email}, nil
}

func (f *fakeAuthService) IsLoggedIn() bool { return f.loggedIn }

func (f *fakeAuthService) Ping(context.Context) error { return f.pingErr }

// ---- catalog ----

type fakeCatalog struct {
	calls []string

	users       []models.User
	courses     []models.Course
	blogs       []models.Blog
	subscribers []models.Subscriber
	pagination  models.Pagination

	course *models.Course
	csv    []byte
	err    error

	categories []string
	discounted []models.Course

	lastUserFilters   models.UserFilters
	lastCourseFilters models.CourseFilters
	lastUser          models.UpdateUserRequest
	lastCourse        models.CourseInput
	lastBlog          models.BlogInput
	lastID            string
	lastSource        string
	lastToggle        bool
}

func (f *fakeCatalog) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeCatalog) ListUsers(_ context.Context, flt models.UserFilters) (*models.Page[models.User], error) {
	f.record("ListUsers")
	f.lastUserFilters = flt
	return &models.Page[models.User]{Items: f.users, Pagination: f.pagination}, f.err
}

func (f *fakeCatalog) CreateUser(_ context.Context, req models.CreateUserRequest) (*models.User, error) {
	f.record("CreateUser")
	return &models.User{ID: "new", FullName: req.FullName, Email: req.Email}, f.err
}

func (f *fakeCatalog) DeleteUser(_ context.Context, id string) error {
	f.record("DeleteUser")
	f.lastID = id
	return f.err
}

func (f *fakeCatalog) ListCourses(_ context.Context, flt models.CourseFilters) (*models.Page[models.Course], error) {
	f.record("ListCourses")
	f.lastCourseFilters = flt
	return &models.Page[models.Course]{Items: f.courses, Pagination: f.pagination}, f.err
}

func (f *fakeCatalog) GetCourse(_ context.Context, id string) (*models.Course, error) {
	f.record("GetCourse")
	f.lastID = id
	return f.course, f.err
}

func (f *fakeCatalog) DeleteCourse(_ context.Context, id string) error {
	f.record("DeleteCourse")
	f.lastID = id
	return f.err
}

func (f *fakeCatalog) SetCourseStatus(_ context.Context, id string, active bool) error {
	f.record("SetCourseStatus")
	f.lastID, f.lastToggle = id, active
	return f.err
}

func (f *fakeCatalog) SetCourseFeatured(_ context.Context, id string, featured bool) error {
	f.record("SetCourseFeatured")
	f.lastID, f.lastToggle = id, featured
	return f.err
}

func (f *fakeCatalog) CourseStats(context.Context) (*models.CourseStats, error) {
	f.record("CourseStats")
	return &models.CourseStats{TotalCourses: 12, ActiveCourses: 10, FeaturedCourses: 3, TotalStudents: 4200, AverageRating: 4.6}, f.err
}

func (f *fakeCatalog) ListBlogs(context.Context, models.BlogFilters) (*models.Page[models.Blog], error) {
	f.record("ListBlogs")
	return &models.Page[models.Blog]{Items: f.blogs, Pagination: f.pagination}, f.err
}

func (f *fakeCatalog) GetBlog(_ context.Context, id string) (*models.Blog, error) {
	f.record("GetBlog")
	f.lastID = id
	return &models.Blog{ID: id, Title: "Hello", Description: "Body text"}, f.err
}

func (f *fakeCatalog) CreateBlog(_ context.Context, in models.BlogInput) (*models.Blog, error) {
	f.record("CreateBlog")
	f.lastBlog = in
	return &models.Blog{ID: "b-new"}, f.err
}

func (f *fakeCatalog) DeleteBlog(_ context.Context, id string) error {
	f.record("DeleteBlog")
	f.lastID = id
	return f.err
}

func (f *fakeCatalog) BlogStats(context.Context) (*models.BlogStats, error) {
	f.record("BlogStats")
	return &models.BlogStats{TotalBlogs: 5, PublishedBlogs: 4, DraftBlogs: 1, TotalViews: 12345}, f.err
}

func (f *fakeCatalog) ListSubscribers(context.Context, models.SubscriberFilters) (*models.Page[models.Subscriber], error) {
	f.record("ListSubscribers")
	return &models.Page[models.Subscriber]{Items: f.subscribers, Pagination: f.pagination}, f.err
}

func (f *fakeCatalog) Unsubscribe(_ context.Context, email string) error {
	f.record("Unsubscribe")
	f.lastID = email
	return f.err
}

func (f *fakeCatalog) ExportSubscribers(context.Context) ([]byte, error) {
	f.record("ExportSubscribers")
	return f.csv, f.err
}

func (f *fakeCatalog) SubscriberStats(context.Context) (*models.SubscriberStats, error) {
	f.record("SubscriberStats")
	return &models.SubscriberStats{Total: 9, Active: 8, Inactive: 1, Today: 2}, f.err
}

func (f *fakeCatalog) UpdateUser(_ context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	f.record("UpdateUser")
	f.lastID, f.lastUser = id, req
	return &models.User{ID: id, FullName: req.FullName, Email: req.Email}, f.err
}

func (f *fakeCatalog) CreateCourse(_ context.Context, in models.CourseInput) (*models.Course, error) {
	f.record("CreateCourse")
	f.lastCourse = in
	return &models.Course{ID: "c-new"}, f.err
}

func (f *fakeCatalog) UpdateCourse(_ context.Context, id string, in models.CourseInput) (*models.Course, error) {
	f.record("UpdateCourse")
	f.lastID, f.lastCourse = id, in
	return &models.Course{ID: id}, f.err
}

func (f *fakeCatalog) CourseCategories(context.Context) ([]string, error) {
	f.record("CourseCategories")
	return f.categories, f.err
}

func (f *fakeCatalog) DiscountedCourses(context.Context) ([]models.Course, error) {
	f.record("DiscountedCourses")
	return f.discounted, f.err
}

func (f *fakeCatalog) UpdateBlog(_ context.Context, id string, in models.BlogInput) (*models.Blog, error) {
	f.record("UpdateBlog")
	f.lastID, f.lastBlog = id, in
	return &models.Blog{ID: id}, f.err
}

func (f *fakeCatalog) Subscribe(_ context.Context, email, source string) error {
	f.record("Subscribe")
	f.lastID, f.lastSource = email, source
	return f.err
}

// ---- session plumbing ----

type memStore struct{ rec *session.Record }

func (s *memStore) Load(context.Context) (*session.Record, error) {
	return s.rec, nil
}

func (s *memStore) Save(_ context.Context, r *session.Record) error {
	s.rec = r
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.rec = nil
	return nil
}

type nopAuthenticator struct{}

func (nopAuthenticator) Login(context.Context, string, string) (*models.AuthResponse, error) {
	return nil, nil
}

func (nopAuthenticator) Refresh(context.Context, string) (*models.TokenPair, error) {
	return nil, nil
}

func (nopAuthenticator) Logout(context.Context, string) error { return nil }

// newTestApp builds an App around fakes. Output goes to the returned buffer.
func newTestApp(t *testing.T, input string) (*App, *fakeAuthService, *fakeCatalog, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	auth := &fakeAuthService{}
	cat := &fakeCatalog{}
	app := &App{
		log:         logging.NewNopLogger(),
		session:     session.NewManager(&memStore{}, nopAuthenticator{}),
		authService: auth,
		catalog:     cat,
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
		mode:        ModeOffline,
	}
	return app, auth, cat, out
}

// stubInputs replaces the interactive prompts: text prompts are answered
// from texts in order, password prompts from passwords.
func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirm
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return answer, nil }
	t.Cleanup(func() { confirm = orig })
}
