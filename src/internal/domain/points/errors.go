package points

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeNegativePointsAmount shared.ErrorCode = "POINTS_NEGATIVE"
	ErrCodeInsufficientPoints   shared.ErrorCode = "POINTS_INSUFFICIENT"
)

var (
	ErrNegativePointsAmount = &shared.DomainError{
		Code:    ErrCodeNegativePointsAmount,
		Message: "積分數量不能為負數",
	}

	// ErrInsufficientPoints 條件式扣點失敗（餘額不足或使用者不存在）
	ErrInsufficientPoints = &shared.DomainError{
		Code:    ErrCodeInsufficientPoints,
		Message: "積分不足，無法下單",
	}
)
