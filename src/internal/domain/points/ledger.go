package points

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// ===========================
// Ledger 積分帳本介面
// ===========================

// Ledger 使用者積分餘額的唯一寫入口
//
// 只有兩種寫入：
// - TryReserve：條件式扣減，由儲存層以單一語句判斷餘額並扣減
//   （UPDATE ... SET points = points - n WHERE points >= n），
//   絕不以「先讀再寫」實作
// - Credit：無條件加點（結算獲得積分、取消退還積分）
//
// 兩個寫入方法都必須在 TransactionManager.InTransaction 內呼叫。
type Ledger interface {
	// TryReserve 嘗試扣減積分
	// amount 為 0 時不觸碰資料庫，直接返回 nil
	// 餘額不足（受影響列數為 0）返回 ErrInsufficientPoints
	TryReserve(ctx shared.TransactionContext, userID user.UserID, amount PointsAmount) error

	// Credit 無條件加點；amount 為 0 時為 no-op
	// 使用者不存在返回 user.ErrUserNotFound
	Credit(ctx shared.TransactionContext, userID user.UserID, amount PointsAmount) error

	// Balance 讀取目前餘額（僅供查詢，不可用於扣點判斷）
	Balance(ctx shared.TransactionContext, userID user.UserID) (PointsAmount, error)
}
