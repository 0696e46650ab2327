package order

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeOrderNotFound      shared.ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeInvalidOrderID     shared.ErrorCode = "ORDER_ID_INVALID"
	ErrCodeInvalidStatus      shared.ErrorCode = "ORDER_STATUS_INVALID"
	ErrCodeInvalidTransition  shared.ErrorCode = "ORDER_INVALID_TRANSITION"
	ErrCodeOrderFinalized     shared.ErrorCode = "ORDER_FINALIZED"
	ErrCodeOrderConflict      shared.ErrorCode = "ORDER_CONFLICT"
	ErrCodeCheckoutInProgress shared.ErrorCode = "CHECKOUT_IN_PROGRESS"
	ErrCodeCorruptedOrder     shared.ErrorCode = "ORDER_CORRUPTED"
)

var (
	ErrOrderNotFound = &shared.DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: "找不到訂單",
	}

	ErrInvalidOrderID = &shared.DomainError{
		Code:    ErrCodeInvalidOrderID,
		Message: "無效的訂單 ID",
	}

	ErrInvalidStatus = &shared.DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: "無效的訂單狀態",
	}

	// ErrInvalidTransition 目標狀態不在允許的轉換表內
	ErrInvalidTransition = &shared.DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: "無法變更為此訂單狀態",
	}

	// ErrOrderFinalized 已完成的訂單不可再修改
	ErrOrderFinalized = &shared.DomainError{
		Code:    ErrCodeOrderFinalized,
		Message: "訂單已完成，無法再修改",
	}

	// ErrOrderConflict 讀取後訂單狀態已被另一個請求變更
	ErrOrderConflict = &shared.DomainError{
		Code:    ErrCodeOrderConflict,
		Message: "訂單狀態已被變更，請重新整理後再試",
	}

	// ErrCheckoutInProgress 同一爐具的結帳正在進行中
	ErrCheckoutInProgress = &shared.DomainError{
		Code:    ErrCodeCheckoutInProgress,
		Message: "訂單處理中，請勿重複送出",
	}

	ErrCorruptedOrder = &shared.DomainError{
		Code:    ErrCodeCorruptedOrder,
		Message: "訂單資料損毀",
	}
)
