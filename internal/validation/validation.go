// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"inkwell/internal/models"
)

const (
	minTitleLen    = 3
	minBodyLen     = 10
	minPasswordLen = 8
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets the minimum requirements
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateName checks a display name for registration.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	return nil
}

// ValidateNewPost checks the required fields of a post about to be created.
// Title, body and category must all be present and well formed.
func ValidateNewPost(title, body, category string) error {
	if len(strings.TrimSpace(title)) < minTitleLen {
		return models.NewValidationError("Title must be at least 3 characters")
	}
	if len(strings.TrimSpace(body)) < minBodyLen {
		return models.NewValidationError("Content must be at least 10 characters")
	}
	if category == "" {
		return models.NewValidationError("Please select a category")
	}
	if !models.ValidCategory(category) {
		return models.NewValidationError("Unknown category: " + category)
	}
	return nil
}

// ValidatePostPatch checks only the fields a partial update provides.
func ValidatePostPatch(patch models.PostDraft) error {
	if patch.Title != nil && len(strings.TrimSpace(*patch.Title)) < minTitleLen {
		return models.NewValidationError("Title must be at least 3 characters")
	}
	if patch.Body != nil && len(strings.TrimSpace(*patch.Body)) < minBodyLen {
		return models.NewValidationError("Content must be at least 10 characters")
	}
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		return models.NewValidationError("Unknown category: " + *patch.Category)
	}
	return nil
}
