package events

import (
	"errors"

	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// MultiPublisher 將事件轉發給多個發布器；全部執行完才回傳合併後的錯誤
type MultiPublisher struct {
	publishers []shared.EventPublisher
}

// NewMultiPublisher 創建組合發布器（忽略 nil）
func NewMultiPublisher(publishers ...shared.EventPublisher) *MultiPublisher {
	m := &MultiPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

func (m *MultiPublisher) Publish(event shared.DomainEvent) error {
	return m.PublishBatch([]shared.DomainEvent{event})
}

func (m *MultiPublisher) PublishBatch(events []shared.DomainEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.PublishBatch(events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
