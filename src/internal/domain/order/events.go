package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// ===========================
// OrderPlaced 領域事件
// ===========================

// OrderPlacedEvent 訂單已建立事件
type OrderPlacedEvent struct {
	eventID    string
	orderID    OrderID
	userID     user.UserID
	totalPrice int64
	pointsUsed int
	occurredAt time.Time
}

func newOrderPlacedEvent(o *Order, now time.Time) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		eventID:    uuid.New().String(),
		orderID:    o.orderID,
		userID:     o.userID,
		totalPrice: o.totalPrice.Int64(),
		pointsUsed: o.pointsUsed.Value(),
		occurredAt: now,
	}
}

func (e *OrderPlacedEvent) EventID() string { return e.eventID }
func (e *OrderPlacedEvent) EventType() string { return "order.placed" }
func (e *OrderPlacedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *OrderPlacedEvent) AggregateID() string { return e.orderID.String() }

// UserID 下單使用者
func (e *OrderPlacedEvent) UserID() user.UserID { return e.userID }

// TotalPrice 應付金額
func (e *OrderPlacedEvent) TotalPrice() int64 { return e.totalPrice }

// PointsUsed 扣除的積分
func (e *OrderPlacedEvent) PointsUsed() int { return e.pointsUsed }

// ===========================
// OrderStatusChanged 領域事件
// ===========================

// OrderStatusChangedEvent 訂單狀態已變更事件
type OrderStatusChangedEvent struct {
	eventID    string
	orderID    OrderID
	from       OrderStatus
	to         OrderStatus
	occurredAt time.Time
}

func newOrderStatusChangedEvent(orderID OrderID, from, to OrderStatus, now time.Time) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		eventID:    uuid.New().String(),
		orderID:    orderID,
		from:       from,
		to:         to,
		occurredAt: now,
	}
}

func (e *OrderStatusChangedEvent) EventID() string { return e.eventID }
func (e *OrderStatusChangedEvent) EventType() string { return "order.status_changed" }
func (e *OrderStatusChangedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *OrderStatusChangedEvent) AggregateID() string { return e.orderID.String() }

// From 原狀態
func (e *OrderStatusChangedEvent) From() OrderStatus { return e.from }

// To 新狀態
func (e *OrderStatusChangedEvent) To() OrderStatus { return e.to }

// ===========================
// OrderPointsSettled 領域事件
// ===========================

// OrderPointsSettledEvent 訂單積分已結算事件（每筆訂單最多一次）
type OrderPointsSettledEvent struct {
	eventID    string
	orderID    OrderID
	userID     user.UserID
	kind       SettlementKind
	amount     int
	occurredAt time.Time
}

func newOrderPointsSettledEvent(orderID OrderID, userID user.UserID, s Settlement, now time.Time) *OrderPointsSettledEvent {
	return &OrderPointsSettledEvent{
		eventID:    uuid.New().String(),
		orderID:    orderID,
		userID:     userID,
		kind:       s.Kind,
		amount:     s.Amount.Value(),
		occurredAt: now,
	}
}

func (e *OrderPointsSettledEvent) EventID() string { return e.eventID }
func (e *OrderPointsSettledEvent) EventType() string { return "order.points_settled" }
func (e *OrderPointsSettledEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *OrderPointsSettledEvent) AggregateID() string { return e.orderID.String() }

// UserID 積分入帳的使用者
func (e *OrderPointsSettledEvent) UserID() user.UserID { return e.userID }

// Kind 結算類型
func (e *OrderPointsSettledEvent) Kind() SettlementKind { return e.kind }

// Amount 入帳積分
func (e *OrderPointsSettledEvent) Amount() int { return e.amount }
