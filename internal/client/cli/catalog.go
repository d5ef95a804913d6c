package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/common"
	"github.com/dustin/go-humanize"
)

const pageSize = 10

func oneArg(args []string, usage string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", fmt.Errorf("%w: %s", errUsage, usage)
	}
	return args[0], nil
}

func toggleArgs(args []string, usage string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, fmt.Errorf("%w: %s", errUsage, usage)
	}
	switch strings.ToLower(args[1]) {
	case "on", "true", "yes":
		return args[0], true, nil
	case "off", "false", "no":
		return args[0], false, nil
	default:
		return "", false, fmt.Errorf("%w: %s", errUsage, usage)
	}
}

// confirmDelete asks before destructive calls.
func (a *App) confirmDelete(what string) (bool, error) {
	ok, err := confirm(a.reader, "Delete "+what+"?", a.out)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
	}
	return ok, nil
}

// ---- users ----

func (a *App) ListUsers(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	res, err := a.catalog.ListUsers(ctx, models.UserFilters{Page: page, Limit: pageSize, Search: search})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", "NAME", "EMAIL", "ROLE", "JOINED")
	for _, u := range res.Items {
		row(tw, u.ID, u.FullName, u.Email, u.Role, when(u.CreatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(a.out, res.Pagination, len(res.Items))
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Initial password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.catalog.CreateUser(ctx, models.CreateUserRequest{FullName: fullName, Email: email, Password: string(password)})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s created.\n", u.ID)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := oneArg(args, "user-del <id>")
	if err != nil {
		return err
	}
	if ok, err := a.confirmDelete("user " + id); err != nil || !ok {
		return err
	}
	if err := a.catalog.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// ---- courses ----

func (a *App) ListCourses(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	res, err := a.catalog.ListCourses(ctx, models.CourseFilters{Page: page, Limit: pageSize, Search: search})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", "TITLE", "LEVEL", "PRICE", "STUDENTS", "ACTIVE", "FEATURED")
	for _, c := range res.Items {
		row(tw, c.ID, c.Title, string(c.Level), coursePrice(c), humanize.Comma(int64(c.Students)), onOff(c.IsActive), onOff(c.IsFeatured))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(a.out, res.Pagination, len(res.Items))
	return nil
}

func coursePrice(c models.Course) string {
	if c.DiscountedPrice != nil {
		return money(*c.DiscountedPrice) + " (was " + money(c.OriginalPrice) + ")"
	}
	return money(c.OriginalPrice)
}

func (a *App) ShowCourse(ctx context.Context, args []string) error {
	id, err := oneArg(args, "course <id>")
	if err != nil {
		return err
	}
	c, err := a.catalog.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", c.ID)
	row(tw, "Title", c.Title)
	row(tw, "Instructor", c.Instructor)
	row(tw, "Category", c.Category)
	row(tw, "Level", string(c.Level))
	row(tw, "Price", coursePrice(*c))
	row(tw, "Rating", fmt.Sprintf("%.1f (%d reviews)", c.Rating, c.ReviewCount))
	row(tw, "Lectures", fmt.Sprintf("%d, %.1fh", c.Lectures, c.TotalHours))
	row(tw, "Active", onOff(c.IsActive))
	row(tw, "Featured", onOff(c.IsFeatured))
	row(tw, "Tags", strings.Join(c.Tags, ", "))
	row(tw, "Updated", when(c.UpdatedAt))
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, c.Description)
	return nil
}

func (a *App) DeleteCourse(ctx context.Context, args []string) error {
	id, err := oneArg(args, "course-del <id>")
	if err != nil {
		return err
	}
	if ok, err := a.confirmDelete("course " + id); err != nil || !ok {
		return err
	}
	if err := a.catalog.DeleteCourse(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func (a *App) FeatureCourse(ctx context.Context, args []string) error {
	id, on, err := toggleArgs(args, "course-feature <id> on|off")
	if err != nil {
		return err
	}
	if err := a.catalog.SetCourseFeatured(ctx, id, on); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Course %s featured: %s\n", id, onOff(on))
	return nil
}

func (a *App) CourseStatus(ctx context.Context, args []string) error {
	id, on, err := toggleArgs(args, "course-status <id> on|off")
	if err != nil {
		return err
	}
	if err := a.catalog.SetCourseStatus(ctx, id, on); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Course %s active: %s\n", id, onOff(on))
	return nil
}

// ---- blogs ----

func (a *App) ListBlogs(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	res, err := a.catalog.ListBlogs(ctx, models.BlogFilters{Page: page, Limit: pageSize, Search: search})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", "TITLE", "AUTHOR", "CATEGORY", "PUBLISHED", "CREATED")
	for _, b := range res.Items {
		row(tw, b.ID, b.Title, b.Author, b.Category, onOff(b.IsPublished), when(b.CreatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(a.out, res.Pagination, len(res.Items))
	return nil
}

func (a *App) ShowBlog(ctx context.Context, args []string) error {
	id, err := oneArg(args, "blog <id>")
	if err != nil {
		return err
	}
	b, err := a.catalog.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", b.ID)
	row(tw, "Title", b.Title)
	row(tw, "Author", b.Author)
	row(tw, "Category", b.Category)
	row(tw, "Read time", b.ReadTime)
	row(tw, "Published", onOff(b.IsPublished))
	row(tw, "Tags", strings.Join(b.Tags, ", "))
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, b.Description)
	return nil
}

func (a *App) AddBlog(ctx context.Context) error {
	var in models.BlogInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Author, err = getSimpleText(a.reader, "Author", a.out); err != nil {
		return err
	}
	if in.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}
	in.Tags = splitTags(tags)
	if in.Description, err = getMultiline(a.reader, "Body", a.out); err != nil {
		return err
	}

	if in.Title == "" || in.Description == "" {
		return fmt.Errorf("%w: blog-add needs a title and a body", errUsage)
	}

	b, err := a.catalog.CreateBlog(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Blog %s created.\n", b.ID)
	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (a *App) DeleteBlog(ctx context.Context, args []string) error {
	id, err := oneArg(args, "blog-del <id>")
	if err != nil {
		return err
	}
	if ok, err := a.confirmDelete("blog " + id); err != nil || !ok {
		return err
	}
	if err := a.catalog.DeleteBlog(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// ---- subscribers ----

func (a *App) ListSubscribers(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	res, err := a.catalog.ListSubscribers(ctx, models.SubscriberFilters{Page: page, Limit: pageSize, Search: search})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "EMAIL", "STATUS", "SOURCE", "SUBSCRIBED")
	for _, s := range res.Items {
		row(tw, s.Email, s.Status, s.Source, when(s.SubscribedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(a.out, res.Pagination, len(res.Items))
	return nil
}

func (a *App) Unsubscribe(ctx context.Context, args []string) error {
	email, err := oneArg(args, "unsubscribe <email>")
	if err != nil {
		return err
	}
	if err := a.catalog.Unsubscribe(ctx, email); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s unsubscribed.\n", email)
	return nil
}

// Export writes the subscriber CSV to a file.
func (a *App) Export(ctx context.Context, args []string) error {
	path, err := oneArg(args, "export <file>")
	if err != nil {
		return err
	}
	data, err := a.catalog.ExportSubscribers(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wrote %s to %s\n", humanize.Bytes(uint64(len(data))), path)
	return nil
}

// ---- dashboard ----

func (a *App) Stats(ctx context.Context) error {
	cs, err := a.catalog.CourseStats(ctx)
	if err != nil {
		return err
	}
	bs, err := a.catalog.BlogStats(ctx)
	if err != nil {
		return err
	}
	ss, err := a.catalog.SubscriberStats(ctx)
	if err != nil {
		return err
	}
	discounted, err := a.catalog.DiscountedCourses(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "Courses", fmt.Sprintf("%d total, %d active, %d featured", cs.TotalCourses, cs.ActiveCourses, cs.FeaturedCourses))
	row(tw, "Students", humanize.Comma(int64(cs.TotalStudents)))
	row(tw, "Discounted courses", strconv.Itoa(len(discounted)))
	row(tw, "Average rating", fmt.Sprintf("%.2f", cs.AverageRating))
	row(tw, "Blogs", fmt.Sprintf("%d total, %d published, %d drafts", bs.TotalBlogs, bs.PublishedBlogs, bs.DraftBlogs))
	row(tw, "Blog views", humanize.Comma(int64(bs.TotalViews)))
	row(tw, "Subscribers", fmt.Sprintf("%d total, %d active, %d today", ss.Total, ss.Active, ss.Today))
	return tw.Flush()
}
