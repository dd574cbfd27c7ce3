// internal/relay/dedup.go
package relay

import (
	"context"
	"time"

	"notion-relay/internal/common/database"
)

// DedupStore is the idempotency guard for outbound notifications. The guard
// is check-then-act: two concurrent deliveries for the same page can both
// pass Exists before either calls MarkSent. That small duplicate window is an
// accepted property of the store, matched to the upstream behavior.
type DedupStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	MarkSent(ctx context.Context, key string, ttl time.Duration) error
}

const markerValue = "sent"

// RedisDedupStore keeps markers in a shared Redis instance so multiple relay
// processes agree on what was already sent. Markers are never deleted, they
// expire naturally.
type RedisDedupStore struct {
	client *database.RedisClient
}

func NewRedisDedupStore(client *database.RedisClient) *RedisDedupStore {
	return &RedisDedupStore{client: client}
}

func (s *RedisDedupStore) Exists(ctx context.Context, key string) (bool, error) {
	return s.client.Exists(ctx, key)
}

func (s *RedisDedupStore) MarkSent(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, key, markerValue, ttl)
}
