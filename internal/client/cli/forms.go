package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
)

// edit prompts for a field showing its current value. An empty answer keeps
// the value.
func (a *App) edit(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(s), "$"), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: price must be a non-negative number", errUsage)
	}
	return v, nil
}

func parseLevel(s string) (models.CourseLevel, error) {
	switch l := models.CourseLevel(strings.ToLower(s)); l {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return l, nil
	default:
		return "", fmt.Errorf("%w: level is beginner, intermediate or advanced", errUsage)
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ---- users ----

func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := oneArg(args, "user-edit <id>")
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if fullName == "" || email == "" {
		return fmt.Errorf("%w: user-edit needs a name and an email", errUsage)
	}

	u, err := a.catalog.UpdateUser(ctx, id, models.UpdateUserRequest{FullName: fullName, Email: email})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s updated: %s <%s>\n", u.ID, u.FullName, u.Email)
	return nil
}

// ---- courses ----

// courseForm fills in from the prompts, starting from the values in c.
func (a *App) courseForm(c models.CourseInput) (models.CourseInput, error) {
	var err error
	if c.Title, err = a.edit("Title", c.Title); err != nil {
		return c, err
	}
	if c.Instructor, err = a.edit("Instructor", c.Instructor); err != nil {
		return c, err
	}
	if c.Category, err = a.edit("Category", c.Category); err != nil {
		return c, err
	}

	level, err := a.edit("Level (beginner, intermediate, advanced)", string(c.Level))
	if err != nil {
		return c, err
	}
	if c.Level, err = parseLevel(level); err != nil {
		return c, err
	}

	if c.Duration, err = a.edit("Duration", c.Duration); err != nil {
		return c, err
	}

	current := ""
	if c.OriginalPrice > 0 {
		current = formatPrice(c.OriginalPrice)
	}
	price, err := a.edit("Price", current)
	if err != nil {
		return c, err
	}
	if c.OriginalPrice, err = parsePrice(price); err != nil {
		return c, err
	}

	tags, err := a.edit("Tags (comma separated)", strings.Join(c.Tags, ", "))
	if err != nil {
		return c, err
	}
	c.Tags = splitTags(tags)

	body, err := getMultiline(a.reader, "Description (empty keeps the current one)", a.out)
	if err != nil {
		return c, err
	}
	if body != "" {
		c.Description = body
	}

	if c.Title == "" || c.Description == "" {
		return c, fmt.Errorf("%w: a course needs a title and a description", errUsage)
	}
	return c, nil
}

func (a *App) AddCourse(ctx context.Context) error {
	in, err := a.courseForm(models.CourseInput{IsActive: true})
	if err != nil {
		return err
	}
	c, err := a.catalog.CreateCourse(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Course %s created.\n", c.ID)
	return nil
}

func (a *App) EditCourse(ctx context.Context, args []string) error {
	id, err := oneArg(args, "course-edit <id>")
	if err != nil {
		return err
	}
	cur, err := a.catalog.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	in, err := a.courseForm(models.CourseInput{
		Title:           cur.Title,
		Description:     cur.Description,
		Image:           cur.Image,
		Category:        cur.Category,
		Instructor:      cur.Instructor,
		Duration:        cur.Duration,
		OriginalPrice:   cur.OriginalPrice,
		DiscountedPrice: cur.DiscountedPrice,
		Level:           cur.Level,
		Badge:           cur.Badge,
		Tags:            cur.Tags,
		IsFeatured:      cur.IsFeatured,
		IsActive:        cur.IsActive,
	})
	if err != nil {
		return err
	}

	if _, err := a.catalog.UpdateCourse(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Course %s updated.\n", id)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.catalog.CourseCategories(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories.")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

// ---- blogs ----

func (a *App) EditBlog(ctx context.Context, args []string) error {
	id, err := oneArg(args, "blog-edit <id>")
	if err != nil {
		return err
	}
	cur, err := a.catalog.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	in := models.BlogInput{
		Title:       cur.Title,
		Description: cur.Description,
		Image:       cur.Image,
		Author:      cur.Author,
		Category:    cur.Category,
		ReadTime:    cur.ReadTime,
		Badge:       cur.Badge,
		Tags:        cur.Tags,
	}
	if in.Title, err = a.edit("Title", in.Title); err != nil {
		return err
	}
	if in.Author, err = a.edit("Author", in.Author); err != nil {
		return err
	}
	if in.Category, err = a.edit("Category", in.Category); err != nil {
		return err
	}
	tags, err := a.edit("Tags (comma separated)", strings.Join(in.Tags, ", "))
	if err != nil {
		return err
	}
	in.Tags = splitTags(tags)
	body, err := getMultiline(a.reader, "Body (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if body != "" {
		in.Description = body
	}

	if _, err := a.catalog.UpdateBlog(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Blog %s updated.\n", id)
	return nil
}

// ---- subscribers ----

// Subscribe adds an address to the newsletter. The source defaults to "admin".
func (a *App) Subscribe(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: subscribe <email> [source]", errUsage)
	}
	source := "admin"
	if len(args) == 2 {
		source = args[1]
	}
	if err := a.catalog.Subscribe(ctx, args[0], source); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s subscribed.\n", args[0])
	return nil
}
