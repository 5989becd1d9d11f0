// Package models contains data structures for the application's domain models.
package models

import "time"

// Post categories. Every post belongs to exactly one.
const (
	CategoryTechnology = "Technology"
	CategoryDesign     = "Design"
	CategoryBusiness   = "Business"
	CategoryLifestyle  = "Lifestyle"

	// CategoryAll is the filter wildcard, never a post category.
	CategoryAll = "all"
)

// Categories lists the valid post categories in display order.
var Categories = []string{
	CategoryTechnology,
	CategoryDesign,
	CategoryBusiness,
	CategoryLifestyle,
}

// ValidCategory reports whether c is one of the fixed post categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Post represents a story in the Inkwell application. Seed posts ship with
// the app and are immutable in storage; custom posts are user-created and
// persisted locally.
type Post struct {
	ID       int64     `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Body     string    `json:"body" yaml:"body"`
	Category string    `json:"category" yaml:"category"`
	Author   string    `json:"author" yaml:"author"`
	UserID   int64     `json:"userId" yaml:"userId"`
	Date     time.Time `json:"date" yaml:"date"`
	Image    string    `json:"image" yaml:"image"`
	// ReadTime is derived from Body and recomputed whenever Body changes.
	ReadTime int `json:"readTime" yaml:"readTime"`
}

// PostDraft is the presentation layer's input for creating or updating a
// post. On update, nil fields are left untouched.
type PostDraft struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	Category *string `json:"category,omitempty"`
	Image    *string `json:"image,omitempty"`
}
