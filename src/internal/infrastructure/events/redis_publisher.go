package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel 事件發布的 Redis 頻道
const DefaultChannel = "gas_shop:events"

const publishTimeout = 2 * time.Second

// Envelope 事件在頻道上的 JSON 格式
type Envelope struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RedisEventPublisher 透過 Redis Pub/Sub 廣播領域事件（通知型，不保證送達）
type RedisEventPublisher struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisEventPublisher 創建 Redis 事件發布器；channel 為空時使用 DefaultChannel
func NewRedisEventPublisher(client redis.UniversalClient, channel string) *RedisEventPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisEventPublisher{client: client, channel: channel}
}

// Publish 發布單一事件
func (p *RedisEventPublisher) Publish(event shared.DomainEvent) error {
	return p.PublishBatch([]shared.DomainEvent{event})
}

// PublishBatch 以 pipeline 發布多個事件
func (p *RedisEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	pipe := p.client.Pipeline()
	for _, event := range events {
		payload, err := json.Marshal(toEnvelope(event))
		if err != nil {
			return fmt.Errorf("failed to encode event %s: %w", event.EventID(), err)
		}
		pipe.Publish(ctx, p.channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}
	return nil
}

func toEnvelope(event shared.DomainEvent) Envelope {
	return Envelope{
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC(),
	}
}
