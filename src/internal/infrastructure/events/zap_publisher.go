package events

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ZapEventPublisher 以結構化日誌記錄領域事件
type ZapEventPublisher struct {
	logger *zap.Logger
}

// NewZapEventPublisher 創建日誌型事件發布器
func NewZapEventPublisher(logger *zap.Logger) *ZapEventPublisher {
	return &ZapEventPublisher{logger: logger.Named("events")}
}

// Publish 記錄單一事件
func (p *ZapEventPublisher) Publish(event shared.DomainEvent) error {
	p.logger.Info("domain event",
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// PublishBatch 依序記錄事件
func (p *ZapEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
