package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/session"
	"github.com/dmitrijs2005/mentorly-admin/internal/common"
	"github.com/dustin/go-humanize"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

// Register prompts for name, email and password and creates an account.
// The user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, fullName, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and starts a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in, use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(user.FullName, user.Email))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.authService.Whoami(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	row(tw, "ID", user.ID)
	row(tw, "Name", user.FullName)
	row(tw, "Email", user.Email)
	row(tw, "Role", user.Role)
	return tw.Flush()
}

// Status prints the session state and when the access token expires.
func (a *App) Status(ctx context.Context) error {
	access, refresh := a.session.Tokens()

	tw := newTable(a.out)
	row(tw, "Connectivity", string(a.getMode()))
	row(tw, "Refresh state", a.session.State().String())
	row(tw, "Refresh token", present(refresh))

	exp, err := session.ExpiresAt(access)
	switch {
	case err == nil:
		row(tw, "Access token expires", fmt.Sprintf("%s (%s)", exp.Local().Format(time.RFC1123), humanize.Time(exp)))
	case errors.Is(err, session.ErrNoExpiry):
		row(tw, "Access token expires", "never")
	default:
		row(tw, "Access token expires", "unknown")
	}
	return tw.Flush()
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.authService.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) UpdateProfile(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	user, err := a.authService.UpdateProfile(ctx, fullName, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s <%s>\n", user.FullName, user.Email)
	return nil
}

func displayName(fullName, email string) string {
	if fullName != "" {
		return fullName
	}
	return email
}

func present(s string) string {
	if s == "" {
		return "missing"
	}
	return "present"
}
