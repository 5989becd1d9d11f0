package validation

import (
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"al@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"no-at-sign", false},
		{"spaces in@mail.com", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()
			err := ValidateEmail(tc.email)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
	assert.NoError(t, ValidatePassword("password1"))
}

func TestValidateNewPost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		body     string
		category string
		wantErr  bool
	}{
		{"valid", "Hi There", "this body is long enough", models.CategoryDesign, false},
		{"title too short", "Hi", "this body is long enough", models.CategoryDesign, true},
		{"title only whitespace", "    ", "this body is long enough", models.CategoryDesign, true},
		{"body too short", "Hi There", "too short", models.CategoryDesign, true},
		{"missing category", "Hi There", "this body is long enough", "", true},
		{"unknown category", "Hi There", "this body is long enough", "Sports", true},
		{"wildcard is not a category", "Hi There", "this body is long enough", models.CategoryAll, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateNewPost(tc.title, tc.body, tc.category)
			if tc.wantErr {
				require.Error(t, err)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, models.CodeValidation, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePostPatch_IgnoresAbsentFields(t *testing.T) {
	t.Parallel()

	// An empty patch is a legal no-op update.
	assert.NoError(t, ValidatePostPatch(models.PostDraft{}))

	bad := "x"
	assert.Error(t, ValidatePostPatch(models.PostDraft{Title: &bad}))

	good := "A new title"
	assert.NoError(t, ValidatePostPatch(models.PostDraft{Title: &good}))
}
