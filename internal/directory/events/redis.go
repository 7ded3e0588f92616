package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the Pub/Sub channel directory events are published on.
const DefaultChannel = "directory:events"

// DefaultPublishTimeout bounds a single publish so an unreachable Redis
// cannot hold up the request that caused the event.
const DefaultPublishTimeout = 500 * time.Millisecond

// RedisPublisher mirrors directory events onto a Redis Pub/Sub channel.
// The client must have ContextTimeoutEnabled set for the timeout to reach
// the socket.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

func NewRedisPublisher(client *redis.Client, channel string, timeout time.Duration) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &RedisPublisher{client: client, channel: channel, timeout: timeout}
}

func (r *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (r *RedisPublisher) Channel() string {
	return r.channel
}
