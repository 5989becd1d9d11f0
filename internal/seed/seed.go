// Package seed provides the bundled sample dataset and helpers to create
// test and demo data. Seed posts are immutable in storage: they are merged
// into the live collection at load time and never written back.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"inkwell/internal/images"
	"inkwell/internal/models"
)

//go:embed posts.yml
var postsYAML []byte

// Posts returns a fresh copy of the bundled sample posts, newest first is
// not guaranteed here; the store sorts the merged collection. Read times are
// recomputed from the body so the dataset can never drift from the formula.
func Posts() ([]models.Post, error) {
	var posts []models.Post
	if err := yaml.Unmarshal(postsYAML, &posts); err != nil {
		return nil, fmt.Errorf("decode bundled posts: %w", err)
	}
	for i := range posts {
		posts[i].ReadTime = images.EstimateReadTime(posts[i].Body)
	}
	return posts, nil
}

// MustPosts is Posts for callers that treat a broken bundle as a programmer
// error (the dataset is compiled in).
func MustPosts() []models.Post {
	posts, err := Posts()
	if err != nil {
		panic(err)
	}
	return posts
}
