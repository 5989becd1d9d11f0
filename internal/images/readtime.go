package images

import "strings"

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// EstimateReadTime returns the estimated reading time of body in whole
// minutes: word count over 200 wpm, rounded up, never below 1.
func EstimateReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
