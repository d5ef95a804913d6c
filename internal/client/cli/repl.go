package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Status(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	UpdateProfile(ctx context.Context) error

	ListUsers(ctx context.Context, args []string) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error

	ListCourses(ctx context.Context, args []string) error
	ShowCourse(ctx context.Context, args []string) error
	AddCourse(ctx context.Context) error
	EditCourse(ctx context.Context, args []string) error
	DeleteCourse(ctx context.Context, args []string) error
	FeatureCourse(ctx context.Context, args []string) error
	CourseStatus(ctx context.Context, args []string) error
	Categories(ctx context.Context) error

	ListBlogs(ctx context.Context, args []string) error
	ShowBlog(ctx context.Context, args []string) error
	AddBlog(ctx context.Context) error
	EditBlog(ctx context.Context, args []string) error
	DeleteBlog(ctx context.Context, args []string) error

	ListSubscribers(ctx context.Context, args []string) error
	Subscribe(ctx context.Context, args []string) error
	Unsubscribe(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = `Available commands:
  whoami, status, profile, passwd, logout
  users [page] [search], user-add, user-edit <id>, user-del <id>
  courses [page] [search], course <id>, course-add, course-edit <id>, course-del <id>
  course-feature <id> on|off, course-status <id> on|off, categories
  blogs [page] [search], blog <id>, blog-add, blog-edit <id>, blog-del <id>
  subscribers [page] [search], subscribe <email> [source], unsubscribe <email>
  export <file>
  stats, help, exit`
)

var errUsage = errors.New("usage")

// runREPL starts a simple read-eval-print loop for the admin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// While logged out only register, login, help and exit are accepted; any
// other command asks the user to log in first. This is also where the
// console lands after a forced logout.
//
// Errors returned by handlers are printed; the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("mentorly %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	run, ok := commands[cmd]
	if !ok {
		printlnFn("Unknown command:", cmd)
		return nil
	}
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}
	return run(ctx, a, args)
}

type command func(ctx context.Context, a execIface, args []string) error

func noArgs(fn func(execIface, context.Context) error) command {
	return func(ctx context.Context, a execIface, _ []string) error { return fn(a, ctx) }
}

func withArgs(fn func(execIface, context.Context, []string) error) command {
	return func(ctx context.Context, a execIface, args []string) error { return fn(a, ctx, args) }
}

var commands = map[string]command{
	"logout":         noArgs(execIface.Logout),
	"whoami":         noArgs(execIface.Whoami),
	"status":         noArgs(execIface.Status),
	"passwd":         noArgs(execIface.ChangePassword),
	"profile":        noArgs(execIface.UpdateProfile),
	"users":          withArgs(execIface.ListUsers),
	"user-add":       noArgs(execIface.AddUser),
	"user-edit":      withArgs(execIface.EditUser),
	"user-del":       withArgs(execIface.DeleteUser),
	"courses":        withArgs(execIface.ListCourses),
	"course":         withArgs(execIface.ShowCourse),
	"course-add":     noArgs(execIface.AddCourse),
	"course-edit":    withArgs(execIface.EditCourse),
	"course-del":     withArgs(execIface.DeleteCourse),
	"course-feature": withArgs(execIface.FeatureCourse),
	"course-status":  withArgs(execIface.CourseStatus),
	"categories":     noArgs(execIface.Categories),
	"blogs":          withArgs(execIface.ListBlogs),
	"blog":           withArgs(execIface.ShowBlog),
	"blog-add":       noArgs(execIface.AddBlog),
	"blog-edit":      withArgs(execIface.EditBlog),
	"blog-del":       withArgs(execIface.DeleteBlog),
	"subscribers":    withArgs(execIface.ListSubscribers),
	"subscribe":      withArgs(execIface.Subscribe),
	"unsubscribe":    withArgs(execIface.Unsubscribe),
	"export":         withArgs(execIface.Export),
	"stats":          noArgs(execIface.Stats),
}
