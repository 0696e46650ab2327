package order

import "fmt"

// OrderStatus 訂單狀態
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusReady      OrderStatus = "READY"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// allowedTransitions 狀態轉換表
// 終止狀態（COMPLETED、CANCELLED）沒有任何出邊
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusReady, StatusCancelled},
	StatusReady:      {StatusDelivering, StatusCancelled},
	StatusDelivering: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// AllStatuses 所有訂單狀態
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusReady,
		StatusDelivering,
		StatusCompleted,
		StatusCancelled,
	}
}

// ParseOrderStatus 解析訂單狀態
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// AllowedTransitions 返回可轉換的目標狀態（副本）
func (s OrderStatus) AllowedTransitions() []OrderStatus {
	targets := allowedTransitions[s]
	out := make([]OrderStatus, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo 是否允許轉換為 target
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal 是否為終止狀態
func (s OrderStatus) IsTerminal() bool {
	targets, ok := allowedTransitions[s]
	return ok && len(targets) == 0
}

// String 字串表示
func (s OrderStatus) String() string {
	return string(s)
}
