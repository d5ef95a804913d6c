package models

import "time"

type Blog struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	ReadTime    string    `json:"readTime,omitempty"`
	Badge       string    `json:"badge,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsPublished bool      `json:"isPublished"`
	Slug        string    `json:"slug,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BlogInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	ReadTime    string   `json:"readTime,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type BlogFilters struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string // newest, oldest or popular
}

type BlogStats struct {
	TotalBlogs     int `json:"totalBlogs"`
	PublishedBlogs int `json:"publishedBlogs"`
	DraftBlogs     int `json:"draftBlogs"`
	TotalViews     int `json:"totalViews"`
}
