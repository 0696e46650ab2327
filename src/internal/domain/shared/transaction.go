package shared

import "context"

// TransactionContext 事務上下文介面
//
// 可選事務參與模式：
// - ctx != nil：在調用者的事務中執行
// - ctx == nil：auto-commit 模式（僅適用於獨立讀取）
//
// 修改狀態的 Repository 方法（Save、UpdateStatus、TryReserve、Credit ...）
// 必須在 TransactionManager.InTransaction 內呼叫。
//
// 這是一個標記介面：Infrastructure Layer 負責實作具體的事務封裝（GORM），
// Domain / Application Layer 只依賴此介面。
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
//
// fn 返回錯誤或 panic 時整個事務回滾；返回 nil 時提交。
// ctx 控制事務的取消與逾時。
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(tx TransactionContext) error) error
}
