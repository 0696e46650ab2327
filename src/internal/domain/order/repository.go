package order

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// OrderRepository 訂單倉儲介面
type OrderRepository interface {
	// Save 新增訂單（含明細、服務項目、爐具快照）
	Save(ctx shared.TransactionContext, o *Order) error

	// FindByID 根據訂單 ID 查找（含明細、服務項目、爐具快照）
	// 錯誤：ErrOrderNotFound
	FindByID(ctx shared.TransactionContext, id OrderID) (*Order, error)

	// UpdateStatus 寫入狀態變更（狀態、時間戳、取消原因、配送員）
	// 以 from 做 compare-and-swap：狀態已不是 from 時返回 ErrOrderConflict
	// 不寫入 points_settled，該欄位只能經由 MarkPointsSettled 變更
	UpdateStatus(ctx shared.TransactionContext, o *Order, from OrderStatus) error

	// MarkPointsSettled 將 points_settled 由 false 設為 true
	// 單一語句 compare-and-swap，返回是否由本次呼叫設定
	MarkPointsSettled(ctx shared.TransactionContext, id OrderID) (bool, error)
}
