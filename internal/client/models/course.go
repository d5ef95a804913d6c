package models

import "time"

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

type Course struct {
	ID                 string      `json:"_id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Image              string      `json:"image,omitempty"`
	Category           string      `json:"category"`
	Instructor         string      `json:"instructor"`
	Duration           string      `json:"duration"`
	OriginalPrice      float64     `json:"originalPrice"`
	DiscountedPrice    *float64    `json:"discountedPrice,omitempty"`
	DiscountPercentage *float64    `json:"discountPercentage,omitempty"`
	Rating             float64     `json:"rating"`
	ReviewCount        int         `json:"reviewCount"`
	Students           int         `json:"students"`
	TotalHours         float64     `json:"totalHours"`
	Lectures           int         `json:"lectures"`
	Level              CourseLevel `json:"level"`
	Badge              string      `json:"badge,omitempty"`
	Tags               []string    `json:"tags,omitempty"`
	IsFeatured         bool        `json:"isFeatured"`
	IsActive           bool        `json:"isActive"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// CourseInput is the body of create and update calls.
type CourseInput struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Image           string      `json:"image,omitempty"`
	Category        string      `json:"category"`
	Instructor      string      `json:"instructor"`
	Duration        string      `json:"duration"`
	OriginalPrice   float64     `json:"originalPrice"`
	DiscountedPrice *float64    `json:"discountedPrice,omitempty"`
	Level           CourseLevel `json:"level"`
	Badge           string      `json:"badge,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	IsFeatured      bool        `json:"isFeatured"`
	IsActive        bool        `json:"isActive"`
}

type CourseFilters struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Level     string
	Featured  *bool
	MinPrice  *float64
	MaxPrice  *float64
	Sort      string
	SortBy    string
	SortOrder string
}

// CourseStats is the overview returned by /courses/stats.
type CourseStats struct {
	TotalCourses    int     `json:"totalCourses"`
	ActiveCourses   int     `json:"activeCourses"`
	FeaturedCourses int     `json:"featuredCourses"`
	TotalStudents   int     `json:"totalStudents"`
	AverageRating   float64 `json:"averageRating"`
}
