package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
)

const coursesPath = "/courses"

func (c *Client) ListCourses(ctx context.Context, f models.CourseFilters) (*models.Page[models.Course], error) {
	q := url.Values{}
	setInt(q, "page", f.Page)
	setInt(q, "limit", f.Limit)
	setString(q, "search", f.Search)
	setString(q, "category", f.Category)
	setString(q, "level", f.Level)
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	setString(q, "sort", f.Sort)
	setString(q, "sortBy", f.SortBy)
	setString(q, "sortOrder", f.SortOrder)
	return list[models.Course](ctx, &c.rest, coursesPath, q)
}

func (c *Client) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if _, err := c.do(ctx, http.MethodGet, pathID(coursesPath, id), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	var course models.Course
	if _, err := c.do(ctx, http.MethodPost, coursesPath, nil, in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, in models.CourseInput) (*models.Course, error) {
	var course models.Course
	if _, err := c.do(ctx, http.MethodPut, pathID(coursesPath, id), nil, in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, pathID(coursesPath, id), nil, nil, nil)
	return err
}

func (c *Client) CourseStats(ctx context.Context) (*models.CourseStats, error) {
	var s models.CourseStats
	if _, err := c.do(ctx, http.MethodGet, coursesPath+"/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CourseCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if _, err := c.do(ctx, http.MethodGet, coursesPath+"/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) FeaturedCourses(ctx context.Context) ([]models.Course, error) {
	return c.courseSlice(ctx, coursesPath+"/featured")
}

func (c *Client) DiscountedCourses(ctx context.Context) ([]models.Course, error) {
	return c.courseSlice(ctx, coursesPath+"/discounted")
}

func (c *Client) courseSlice(ctx context.Context, path string) ([]models.Course, error) {
	var out []models.Course
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetCourseStatus(ctx context.Context, id string, active bool) error {
	body := struct {
		IsActive bool `json:"isActive"`
	}{active}
	_, err := c.do(ctx, http.MethodPatch, pathID(coursesPath, id)+"/status", nil, body, nil)
	return err
}

func (c *Client) SetCourseFeatured(ctx context.Context, id string, featured bool) error {
	body := struct {
		IsFeatured bool `json:"isFeatured"`
	}{featured}
	_, err := c.do(ctx, http.MethodPatch, pathID(coursesPath, id)+"/featured", nil, body, nil)
	return err
}
