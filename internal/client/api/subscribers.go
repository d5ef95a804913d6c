package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
)

const subscribePath = "/subscribe"

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

func (c *Client) Subscribe(ctx context.Context, email, source string) error {
	_, err := c.do(ctx, http.MethodPost, subscribePath, nil, subscribeRequest{Email: email, Source: source}, nil)
	return err
}

func (c *Client) ListSubscribers(ctx context.Context, f models.SubscriberFilters) (*models.Page[models.Subscriber], error) {
	q := url.Values{}
	setString(q, "search", f.Search)
	setString(q, "status", f.Status)
	setInt(q, "page", f.Page)
	setInt(q, "limit", f.Limit)
	setString(q, "startDate", f.StartDate)
	setString(q, "endDate", f.EndDate)
	return list[models.Subscriber](ctx, &c.rest, subscribePath, q)
}

// Unsubscribe removes email from the list. The address travels in the body
// of the DELETE request.
func (c *Client) Unsubscribe(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodDelete, subscribePath, nil, subscribeRequest{Email: email}, nil)
	return err
}

// ExportSubscribers returns the subscriber list as CSV.
func (c *Client) ExportSubscribers(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, subscribePath+"/export", nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")
	return c.send(req)
}

func (c *Client) SubscriberStats(ctx context.Context) (*models.SubscriberStats, error) {
	var s models.SubscriberStats
	if _, err := c.do(ctx, http.MethodGet, subscribePath+"/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
