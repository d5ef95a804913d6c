package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return text, nil }
	t.Cleanup(func() { getMultiline = orig })
}

func TestApp_Edit_EmptyKeepsCurrent(t *testing.T) {
	app, _, _, out := newTestApp(t, "\nNew\n")

	v, err := app.edit("Title", "Go Basics")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", v)
	assert.Contains(t, out.String(), "Title [Go Basics]")

	v, err = app.edit("Title", "Go Basics")
	require.NoError(t, err)
	assert.Equal(t, "New", v)
}

func TestApp_EditUser(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")
	stubInputs(t, []string{"Ada King", "ada@king.dev"})

	require.NoError(t, app.EditUser(context.Background(), []string{"u1"}))

	assert.Equal(t, "u1", cat.lastID)
	assert.Equal(t, models.UpdateUserRequest{FullName: "Ada King", Email: "ada@king.dev"}, cat.lastUser)
	assert.Contains(t, out.String(), "User u1 updated: Ada King <ada@king.dev>")
}

func TestApp_EditUser_NeedsBothFields(t *testing.T) {
	app, _, cat, _ := newTestApp(t, "")
	stubInputs(t, []string{"Ada King", ""})

	require.ErrorIs(t, app.EditUser(context.Background(), []string{"u1"}), errUsage)
	assert.Empty(t, cat.calls)
}

func TestApp_AddCourse(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")
	stubInputs(t, []string{"Go APIs", "Grace", "backend", "Advanced", "6 weeks", "$49.99", "go, api"})
	stubMultiline(t, "Deep dive.")

	require.NoError(t, app.AddCourse(context.Background()))

	want := models.CourseInput{
		Title:         "Go APIs",
		Description:   "Deep dive.",
		Category:      "backend",
		Instructor:    "Grace",
		Duration:      "6 weeks",
		OriginalPrice: 49.99,
		Level:         models.LevelAdvanced,
		Tags:          []string{"go", "api"},
		IsActive:      true,
	}
	if diff := cmp.Diff(want, cat.lastCourse); diff != "" {
		t.Errorf("course input mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "Course c-new created.")
}

func TestApp_AddCourse_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{"level", []string{"Go APIs", "Grace", "backend", "expert"}},
		{"price", []string{"Go APIs", "Grace", "backend", "beginner", "6 weeks", "free"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, cat, _ := newTestApp(t, "")
			stubInputs(t, tt.texts)
			stubMultiline(t, "Deep dive.")

			require.ErrorIs(t, app.AddCourse(context.Background()), errUsage)
			assert.Empty(t, cat.calls)
		})
	}
}

func TestApp_EditCourse_KeepsUnchangedFields(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")
	discounted := 19.0
	cat.course = &models.Course{
		ID:              "c1",
		Title:           "Go Basics",
		Description:     "Learn Go.",
		Category:        "backend",
		Instructor:      "Ada",
		Duration:        "4 weeks",
		OriginalPrice:   29,
		DiscountedPrice: &discounted,
		Level:           models.LevelBeginner,
		Tags:            []string{"go"},
		IsFeatured:      true,
		IsActive:        true,
	}
	stubInputs(t, []string{"Go Fundamentals", "", "", "", "", "", ""})
	stubMultiline(t, "")

	require.NoError(t, app.EditCourse(context.Background(), []string{"c1"}))

	want := models.CourseInput{
		Title:           "Go Fundamentals",
		Description:     "Learn Go.",
		Category:        "backend",
		Instructor:      "Ada",
		Duration:        "4 weeks",
		OriginalPrice:   29,
		DiscountedPrice: &discounted,
		Level:           models.LevelBeginner,
		Tags:            []string{"go"},
		IsFeatured:      true,
		IsActive:        true,
	}
	if diff := cmp.Diff(want, cat.lastCourse); diff != "" {
		t.Errorf("course input mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"GetCourse", "UpdateCourse"}, cat.calls)
	assert.Contains(t, out.String(), "Course c1 updated.")
}

func TestApp_EditBlog(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")
	stubInputs(t, []string{"", "Grace", "", "go, release"})
	stubMultiline(t, "")

	require.NoError(t, app.EditBlog(context.Background(), []string{"b1"}))

	want := models.BlogInput{Title: "Hello", Description: "Body text", Author: "Grace", Tags: []string{"go", "release"}}
	if diff := cmp.Diff(want, cat.lastBlog); diff != "" {
		t.Errorf("blog input mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"GetBlog", "UpdateBlog"}, cat.calls)
	assert.Contains(t, out.String(), "Blog b1 updated.")
}

func TestApp_Categories(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")

	require.NoError(t, app.Categories(context.Background()))
	assert.Contains(t, out.String(), "No categories.")

	out.Reset()
	cat.categories = []string{"backend", "design"}
	require.NoError(t, app.Categories(context.Background()))
	assert.Equal(t, "backend\ndesign\n", out.String())
}

func TestApp_Subscribe(t *testing.T) {
	app, _, cat, out := newTestApp(t, "")

	require.NoError(t, app.Subscribe(context.Background(), []string{"reader@example.com"}))
	assert.Equal(t, "admin", cat.lastSource)

	require.NoError(t, app.Subscribe(context.Background(), []string{"reader@example.com", "footer"}))
	assert.Equal(t, "footer", cat.lastSource)
	assert.Equal(t, "reader@example.com", cat.lastID)
	assert.Contains(t, out.String(), "reader@example.com subscribed.")

	require.ErrorIs(t, app.Subscribe(context.Background(), nil), errUsage)
}

func TestParsePriceAndLevel(t *testing.T) {
	v, err := parsePrice(" $12.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 0)

	_, err = parsePrice("-3")
	require.ErrorIs(t, err, errUsage)

	l, err := parseLevel("Intermediate")
	require.NoError(t, err)
	assert.Equal(t, models.LevelIntermediate, l)

	assert.Equal(t, "29", formatPrice(29))
	assert.Equal(t, "49.99", formatPrice(49.99))
}
