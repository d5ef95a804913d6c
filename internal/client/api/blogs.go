package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
)

const blogsPath = "/blogs"

func (c *Client) ListBlogs(ctx context.Context, f models.BlogFilters) (*models.Page[models.Blog], error) {
	q := url.Values{}
	setInt(q, "page", f.Page)
	setInt(q, "limit", f.Limit)
	setString(q, "category", f.Category)
	setString(q, "search", f.Search)
	setString(q, "sort", f.Sort)
	return list[models.Blog](ctx, &c.rest, blogsPath, q)
}

func (c *Client) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if _, err := c.do(ctx, http.MethodGet, pathID(blogsPath, id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBlog(ctx context.Context, in models.BlogInput) (*models.Blog, error) {
	var b models.Blog
	if _, err := c.do(ctx, http.MethodPost, blogsPath, nil, in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, in models.BlogInput) (*models.Blog, error) {
	var b models.Blog
	if _, err := c.do(ctx, http.MethodPut, pathID(blogsPath, id), nil, in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, pathID(blogsPath, id), nil, nil, nil)
	return err
}

func (c *Client) BlogStats(ctx context.Context) (*models.BlogStats, error) {
	var s models.BlogStats
	if _, err := c.do(ctx, http.MethodGet, blogsPath+"/stats/overview", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
