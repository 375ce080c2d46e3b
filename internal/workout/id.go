package workout

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NewID returns a fresh identifier for a workout, block or sub-block.
// Identifiers are millisecond timestamps bumped to stay strictly increasing
// within the process, so they never collide with ids observed earlier.
func NewID() int64 {
	for {
		prev := lastID.Load()

		next := time.Now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}

		if lastID.CompareAndSwap(prev, next) {
			return next
		}
	}
}

// observeID records an id loaded from storage so that NewID never hands it
// out again.
func observeID(id int64) {
	for {
		prev := lastID.Load()
		if id <= prev || lastID.CompareAndSwap(prev, id) {
			return
		}
	}
}
