package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zamreal/property-system/internal/core/domain"
)

const dispatchTTL = 24 * time.Hour

// DispatchDedup keeps a committed reminder from being delivered more than
// once when dispatch is retried. Key format: dispatch:<reminder_id>:<channel>
type DispatchDedup struct {
	client *redis.Client
}

func NewDispatchDedup(client *redis.Client) *DispatchDedup {
	return &DispatchDedup{client: client}
}

// IsDispatched reports whether this reminder has already been delivered.
func (d *DispatchDedup) IsDispatched(ctx context.Context, r domain.Reminder) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(r)).Result()
	if err != nil {
		return false, fmt.Errorf("dispatch dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkDispatched records the delivery (expires after dispatchTTL).
func (d *DispatchDedup) MarkDispatched(ctx context.Context, r domain.Reminder) error {
	return d.client.Set(ctx, d.key(r), "1", dispatchTTL).Err()
}

func (d *DispatchDedup) key(r domain.Reminder) string {
	return fmt.Sprintf("dispatch:%s:%s", r.ID, r.Channel)
}
