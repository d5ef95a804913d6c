package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
)

const usersPath = "/auth/users"

func (c *Client) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	var u models.UserProfile
	if _, err := c.do(ctx, http.MethodGet, "/auth/get-current-user", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/change-password", nil, req, nil)
	return err
}

// UpdateProfile changes the name and email of the logged-in account.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	var u models.UserProfile
	// the route name is misspelled on the server
	if _, err := c.do(ctx, http.MethodPatch, "/auth/update-accound-details", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context, f models.UserFilters) (*models.Page[models.User], error) {
	q := url.Values{}
	setInt(q, "page", f.Page)
	setInt(q, "limit", f.Limit)
	setString(q, "search", f.Search)
	return list[models.User](ctx, &c.rest, "/auth/get-all-users", q)
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var u models.User
	if _, err := c.do(ctx, http.MethodPost, "/auth/create-user", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	var u models.User
	if _, err := c.do(ctx, http.MethodPatch, pathID(usersPath, id), nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, pathID(usersPath, id), nil, nil, nil)
	return err
}
