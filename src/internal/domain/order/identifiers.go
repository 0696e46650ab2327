package order

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// OrderMarker 是 OrderID 的標記類型
type OrderMarker struct{}

// OrderID 訂單唯一標識符
type OrderID = shared.EntityID[OrderMarker]

// NewOrderID 生成新的訂單 ID
func NewOrderID() OrderID {
	return shared.NewEntityID[OrderMarker]()
}

// OrderIDFromString 從字串解析訂單 ID，失敗返回 ErrInvalidOrderID
func OrderIDFromString(s string) (OrderID, error) {
	return shared.EntityIDFromString[OrderMarker](s, ErrInvalidOrderID)
}
