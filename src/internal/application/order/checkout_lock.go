package order

import "context"

// CheckoutLock 同一使用者 / 爐具的結帳短鎖
//
// 只用於快速拒絕重複送出；正確性仍由資料庫事務內的
// 條件式扣點與購物車版本比對保證。
type CheckoutLock interface {
	// Acquire 取得鎖；已被持有時返回 order.ErrCheckoutInProgress
	// release 必須被呼叫（可重複呼叫）
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func checkoutLockKey(userID, stoveID string) string {
	return "checkout:" + userID + ":" + stoveID
}
