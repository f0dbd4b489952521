package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EntryGuard provides fast once-per-user giveaway entry checks backed by
// Redis. Keys have no TTL; the Mongo unique index is the durable record, this
// is only the cheap first line.
// Key format: giveaway_entry:<giveaway_id>:<user_id>
type EntryGuard struct {
	client *redis.Client
}

// NewEntryGuard creates an EntryGuard wrapping the given Redis client.
func NewEntryGuard(client *redis.Client) *EntryGuard {
	return &EntryGuard{client: client}
}

// HasEntered reports whether this user already entered the giveaway.
func (g *EntryGuard) HasEntered(ctx context.Context, giveawayID, userID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(giveawayID, userID)).Result()
	if err != nil {
		return false, fmt.Errorf("entry check: %w", err)
	}
	return n > 0, nil
}

// MarkEntered records that this user entered the giveaway.
func (g *EntryGuard) MarkEntered(ctx context.Context, giveawayID, userID string) error {
	return g.client.Set(ctx, g.key(giveawayID, userID), "1", 0).Err()
}

func (g *EntryGuard) key(giveawayID, userID string) string {
	return fmt.Sprintf("giveaway_entry:%s:%s", giveawayID, userID)
}
