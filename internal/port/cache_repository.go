package port

import "context"

type CacheRepository interface {
	// SetIdempotency claims a key for the duplicate-submit window, returns
	// false if the key is already held.
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ClearIdempotency releases a claimed key so a failed operation can be
	// retried immediately.
	ClearIdempotency(ctx context.Context, key string) error
}
