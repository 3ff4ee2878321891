package db

import (
	"iter"

	"github.com/orrery/neowatch/internal/neo"
)

// Limit truncates a query stream to at most n approaches. The source
// stream is consumed lazily, so approaches past the limit are never
// evaluated. n <= 0 means no limit.
func Limit(results iter.Seq[*neo.Approach], n int) iter.Seq[*neo.Approach] {
	if n <= 0 {
		return results
	}
	return func(yield func(*neo.Approach) bool) {
		seen := 0
		for a := range results {
			if !yield(a) {
				return
			}
			seen++
			if seen == n {
				return
			}
		}
	}
}
