package interfaces

import (
	"context"
	"time"
)

// ISearchCache caches serialized search result pages for a short TTL.
//
// Get reports a miss with (false, nil); cache failures are soft: callers
// fall through to the repository and log, they never fail the request.
// There is no explicit invalidation: newly created listings are not publicly
// visible until verified, so a short TTL bounds staleness adequately.

type ISearchCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
