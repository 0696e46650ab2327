package cart

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// CheckoutRepository 結帳用的購物車倉儲
type CheckoutRepository interface {
	// LoadCheckout 讀取爐具（含綁定商品、贈品）與其購物車（含明細、服務項目）
	// 錯誤：ErrStoveNotFound（不存在或不屬於 userID）
	// 爐具尚無購物車時返回一個空購物車
	LoadCheckout(ctx shared.TransactionContext, userID user.UserID, stoveID StoveID) (*Checkout, error)

	// Consume 刪除所有明細與服務項目，重置 type = NORMAL、isStoveActive = false，
	// 並以讀取時的 Version 做 compare-and-swap
	// 錯誤：ErrCartChanged（購物車已被另一筆結帳消耗）
	Consume(ctx shared.TransactionContext, c *Cart) error
}
