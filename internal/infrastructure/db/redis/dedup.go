package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// CheckoutDedup provides fast idempotency checks for checkout requests.
// Key format: checkout:<idempotency_key>. The durable guard is the order
// store's idempotency-key lookup; this cache only short-circuits replays.
type CheckoutDedup struct {
	client *redis.Client
}

// NewCheckoutDedup creates a CheckoutDedup wrapping the given Redis client.
func NewCheckoutDedup(client *redis.Client) *CheckoutDedup {
	return &CheckoutDedup{client: client}
}

// IsDuplicate reports whether an order with this idempotency key was already placed.
func (d *CheckoutDedup) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an order with this idempotency key has been placed
// (expires after dedupTTL).
func (d *CheckoutDedup) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", dedupTTL).Err()
}

func (d *CheckoutDedup) key(idempotencyKey string) string {
	return "checkout:" + idempotencyKey
}
