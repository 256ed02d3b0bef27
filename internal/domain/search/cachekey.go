package search

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// CacheKey derives a stable cache key from the compiled query. Because the
// key is built from the predicate set and window rather than the raw request
// params, logically equivalent filters share one cache entry.
func (q Query) CacheKey(prefix string) string {
	var b strings.Builder
	for i, name := range q.PredicateNames() {
		if i > 0 {
			b.WriteString(":")
		}
		b.WriteString(name)
	}
	fmt.Fprintf(&b, "|offset=%d|limit=%d", q.Offset, q.Limit)

	sum := md5.Sum([]byte(b.String()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
