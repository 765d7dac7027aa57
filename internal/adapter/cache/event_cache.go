package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type EventCache struct {
	client *redis.Client
}

func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{client: client}
}

func eventKey(eventID domain.ID) string {
	return fmt.Sprintf("event:%s", eventID)
}

// Get returns nil without error on a cache miss.
func (c *EventCache) Get(ctx context.Context, eventID domain.ID) (*domain.Event, error) {
	payload, err := c.client.Get(ctx, eventKey(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var event domain.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode cached event %s: %w", eventID, err)
	}

	return &event, nil
}

func (c *EventCache) Set(ctx context.Context, event *domain.Event, ttl time.Duration) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, eventKey(event.ID), payload, ttl).Err()
}

func (c *EventCache) Invalidate(ctx context.Context, eventID domain.ID) error {
	return c.client.Del(ctx, eventKey(eventID)).Err()
}
