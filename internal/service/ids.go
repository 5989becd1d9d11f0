package service

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// nextTimeID returns a unix-millisecond derived id, bumped past the previous
// one so two records created in the same millisecond stay unique for the
// lifetime of the process.
func nextTimeID(now time.Time) int64 {
	candidate := now.UnixMilli()
	for {
		prev := lastID.Load()
		if candidate <= prev {
			candidate = prev + 1
		}
		if lastID.CompareAndSwap(prev, candidate) {
			return candidate
		}
	}
}
