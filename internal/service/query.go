package service

import (
	"strings"

	"inkwell/internal/models"
)

// DefaultPageSize is the dashboard page size.
const DefaultPageSize = 6

// Query is the ephemeral browse state the presentation layer holds. Page is
// 1-based and deliberately not clamped here: callers reset it to 1 whenever
// Search or Category changes.
type Query struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// Page is one page of the filtered collection.
type Page struct {
	Posts      []models.Post
	TotalPages int
	Total      int
}

// Filter returns the subset of posts whose title or body contains query
// (case-insensitive) and whose category matches category, with "all" (or
// empty) as the wildcard. Pure.
func Filter(posts []models.Post, query, category string) []models.Post {
	q := strings.ToLower(query)
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Body), q)
		matchesCategory := category == "" ||
			category == models.CategoryAll ||
			p.Category == category
		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Paginate slices one 1-based page out of filtered. A page past the end is
// an empty slice, not an error. Pure.
func Paginate(filtered []models.Post, page, pageSize int) []models.Post {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []models.Post{}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages returns the page count for a filtered result set.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (total + pageSize - 1) / pageSize
}
