// Package services contains application services for the Mentorly admin
// client. This file defines the account service: login, registration,
// logout, the cached profile and account updates.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/api"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/session"
	"github.com/dmitrijs2005/mentorly-admin/internal/logging"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login: validate input, authenticate and start a persisted session.
//   - Register: create an account. It does not log in.
//   - Logout: end the session; the remote call is best-effort.
//   - Whoami: the profile of the session, refreshed from the API when reachable.
//   - ChangePassword / UpdateProfile: account self-service.
//
// Passwords are taken as byte slices and wiped by the caller.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error)
	Register(ctx context.Context, fullName, email string, password []byte) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword []byte) error
	UpdateProfile(ctx context.Context, fullName, email string) (*models.UserProfile, error)
	IsLoggedIn() bool
	Ping(ctx context.Context) error
}

// Registrar creates accounts. api.AuthClient implements it.
type Registrar interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// AccountAPI is the part of api.Client used by the service.
type AccountAPI interface {
	Ping(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

type authService struct {
	session   *session.Manager
	registrar Registrar
	account   AccountAPI
	log       logging.Logger
}

func NewAuthService(m *session.Manager, registrar Registrar, account AccountAPI, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{session: m, registrar: registrar, account: account, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword("password", password); err != nil {
		return nil, err
	}

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "logged in", "user", email)
	return user, nil
}

func (a *authService) Register(ctx context.Context, fullName, email string, password []byte) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if err := validateFullName(fullName); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword("password", password); err != nil {
		return err
	}

	_, err := a.registrar.Register(ctx, models.RegisterRequest{
		FullName: fullName,
		Email:    email,
		Password: string(password),
	})
	return err
}

func (a *authService) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	a.session.Logout(ctx)
	return nil
}

// Whoami returns the profile from the API and caches it with the session.
// When the API is unreachable the cached profile is returned.
func (a *authService) Whoami(ctx context.Context) (*models.UserProfile, error) {
	if !a.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		cached := a.session.User()
		if cached == nil || !errors.Is(err, api.ErrUnavailable) {
			return nil, err
		}
		a.log.Warn(ctx, "api unreachable, using cached profile", "error", err)
		return cached, nil
	}

	if err := a.session.SetUser(ctx, user); err != nil {
		a.log.Error(ctx, "failed to cache profile", "error", err)
	}
	return user, nil
}

func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword []byte) error {
	if len(oldPassword) == 0 {
		return &ValidationError{Field: "oldPassword", Message: "Current password is required"}
	}
	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}

	return a.account.ChangePassword(ctx, models.ChangePasswordRequest{
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
	})
}

func (a *authService) UpdateProfile(ctx context.Context, fullName, email string) (*models.UserProfile, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}

	user, err := a.account.UpdateProfile(ctx, models.UpdateProfileRequest{FullName: fullName, Email: email})
	if err != nil {
		return nil, err
	}

	if err := a.session.SetUser(ctx, user); err != nil {
		a.log.Error(ctx, "failed to cache profile", "error", err)
	}
	return user, nil
}

func (a *authService) IsLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *authService) Ping(ctx context.Context) error {
	return a.account.Ping(ctx)
}
